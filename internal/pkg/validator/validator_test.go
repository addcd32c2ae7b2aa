package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31", "2024-02-29"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", "2023-1-1", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestToday(t *testing.T) {
	now := time.Date(2024, 3, 31, 22, 30, 0, 0, time.UTC)
	jakarta := time.FixedZone("WIB", 7*60*60)

	assert.Equal(t, "2024-03-31", Today(now, nil))
	assert.Equal(t, "2024-04-01", Today(now, jakarta))
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid"},
		{Field: "department", Message: "required"},
	}
	assert.Equal(t, "email: invalid; department: required", errs.Error())
	assert.Equal(t, "invalid", errs.First())
	assert.Equal(t, "", ValidationErrors{}.First())
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid"},
		{Field: "department", Message: "required"},
	}
	assert.Equal(t, map[string]string{"email": "invalid", "department": "required"}, errs.ToMap())
}

type sample struct {
	Code   string `json:"employee_id" validate:"required,max=5"`
	Email  string `json:"email" validate:"required,email"`
	Day    string `json:"date" validate:"required,datetime=2006-01-02"`
	Status string `json:"status" validate:"required,oneof=PRESENT ABSENT"`
}

func TestStruct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		err := Struct(&sample{Code: "E1", Email: "a@b.co", Day: "2024-01-02", Status: "ABSENT"})
		assert.NoError(t, err)
	})

	t.Run("field errors use json names in declaration order", func(t *testing.T) {
		err := Struct(&sample{Code: "TOO-LONG", Email: "nope", Day: "02/01/2024", Status: "LATE"})
		require.Error(t, err)

		var errs ValidationErrors
		require.ErrorAs(t, err, &errs)
		require.Len(t, errs, 4)
		assert.Equal(t, ValidationError{Field: "employee_id", Message: "employee_id must be at most 5 characters"}, errs[0])
		assert.Equal(t, ValidationError{Field: "email", Message: "email must be a valid email address"}, errs[1])
		assert.Equal(t, ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"}, errs[2])
		assert.Equal(t, ValidationError{Field: "status", Message: "status must be one of: PRESENT, ABSENT"}, errs[3])
	})

	t.Run("required", func(t *testing.T) {
		err := Struct(&sample{})
		var errs ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Equal(t, "employee_id is required", errs.First())
	})
}
