package employee

import (
	"encoding/json"
	"testing"

	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ID
	}{
		{name: "number", input: `{"id": 42}`, expected: "42"},
		{name: "string", input: `{"id": "0190a1b2-7c3d"}`, expected: "0190a1b2-7c3d"},
		{name: "null", input: `{"id": null}`, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e Employee
			require.NoError(t, json.Unmarshal([]byte(tt.input), &e))
			assert.Equal(t, tt.expected, e.ID)
		})
	}

	var e Employee
	assert.Error(t, json.Unmarshal([]byte(`{"id": true}`), &e))
}

func TestCreateEmployeeRequest_Validate(t *testing.T) {
	t.Run("trims and accepts", func(t *testing.T) {
		req := CreateEmployeeRequest{
			EmployeeID: " EMP-001 ",
			FullName:   "Ada Lovelace",
			Email:      "ada@example.com ",
			Department: "Engineering",
		}
		require.NoError(t, req.Validate())
		assert.Equal(t, "EMP-001", req.EmployeeID)
		assert.Equal(t, "ada@example.com", req.Email)
	})

	t.Run("missing fields", func(t *testing.T) {
		req := CreateEmployeeRequest{EmployeeID: "EMP-001", Email: "not-an-email"}
		err := req.Validate()

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Equal(t, map[string]string{
			"full_name":  "full_name is required",
			"email":      "email must be a valid email address",
			"department": "department is required",
		}, errs.ToMap())
	})

	t.Run("whitespace only counts as missing", func(t *testing.T) {
		req := CreateEmployeeRequest{EmployeeID: "   ", FullName: "A", Email: "a@b.co", Department: "D"}
		err := req.Validate()

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Equal(t, "employee_id is required", errs.First())
	})
}
