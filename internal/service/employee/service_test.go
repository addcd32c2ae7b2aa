package employee

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEmployeeRepo struct {
	list       func(ctx context.Context) ([]employee.Employee, error)
	create     func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error)
	delete     func(ctx context.Context, id employee.ID) error
	getSummary func(ctx context.Context, id employee.ID) (employee.Summary, error)
}

func (s *stubEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return s.list(ctx)
}

func (s *stubEmployeeRepo) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	return s.create(ctx, req)
}

func (s *stubEmployeeRepo) Delete(ctx context.Context, id employee.ID) error {
	return s.delete(ctx, id)
}

func (s *stubEmployeeRepo) GetSummary(ctx context.Context, id employee.ID) (employee.Summary, error) {
	return s.getSummary(ctx, id)
}

func TestEmployeeService_ListEmployees(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := &stubEmployeeRepo{list: func(context.Context) ([]employee.Employee, error) {
			return []employee.Employee{{ID: "1", EmployeeID: "E1"}}, nil
		}}

		employees, err := NewEmployeeService(repo).ListEmployees(context.Background())

		require.NoError(t, err)
		assert.Len(t, employees, 1)
	})

	t.Run("failure returns empty list", func(t *testing.T) {
		repo := &stubEmployeeRepo{list: func(context.Context) ([]employee.Employee, error) {
			return nil, fmt.Errorf("%w: GET /api/employees/", apiclient.ErrNetworkUnreachable)
		}}

		employees, err := NewEmployeeService(repo).ListEmployees(context.Background())

		require.Error(t, err)
		assert.NotNil(t, employees)
		assert.Empty(t, employees)
		assert.Equal(t, apiclient.NetworkMessage, apiclient.Message(err))
	})
}

func TestEmployeeService_CreateEmployee(t *testing.T) {
	t.Run("invalid request never reaches the API", func(t *testing.T) {
		repo := &stubEmployeeRepo{create: func(context.Context, employee.CreateEmployeeRequest) (employee.Employee, error) {
			t.Fatal("create must not be called")
			return employee.Employee{}, nil
		}}

		_, err := NewEmployeeService(repo).CreateEmployee(context.Background(), employee.CreateEmployeeRequest{FullName: "Ada"})

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Equal(t, "employee_id is required", errs.First())
	})

	t.Run("trimmed request is sent", func(t *testing.T) {
		var sent employee.CreateEmployeeRequest
		repo := &stubEmployeeRepo{create: func(_ context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
			sent = req
			return employee.Employee{ID: "7", EmployeeID: req.EmployeeID}, nil
		}}

		created, err := NewEmployeeService(repo).CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
			EmployeeID: " E7 ",
			FullName:   "Grace Hopper",
			Email:      "grace@example.com",
			Department: " Navy",
		})

		require.NoError(t, err)
		assert.Equal(t, employee.ID("7"), created.ID)
		assert.Equal(t, "E7", sent.EmployeeID)
		assert.Equal(t, "Navy", sent.Department)
	})

	t.Run("server rejection keeps api error", func(t *testing.T) {
		repo := &stubEmployeeRepo{create: func(context.Context, employee.CreateEmployeeRequest) (employee.Employee, error) {
			return employee.Employee{}, &apiclient.APIError{StatusCode: 400, DetailText: "Employee ID already exists."}
		}}

		_, err := NewEmployeeService(repo).CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
			EmployeeID: "E1",
			FullName:   "Ada",
			Email:      "ada@example.com",
			Department: "Eng",
		})

		require.Error(t, err)
		assert.Equal(t, apiclient.KindServerValidation, apiclient.KindOf(err))
		assert.Equal(t, "Employee ID already exists.", apiclient.Message(err))
	})
}

func TestEmployeeService_DeleteEmployee(t *testing.T) {
	tests := []struct {
		name     string
		id       employee.ID
		repoErr  error
		expected error
	}{
		{name: "success", id: "1"},
		{name: "empty id", id: "", expected: employee.ErrEmployeeIDEmpty},
		{name: "not found", id: "9", repoErr: employee.ErrEmployeeNotFound, expected: employee.ErrEmployeeNotFound},
		{name: "unreachable", id: "1", repoErr: apiclient.ErrNetworkUnreachable, expected: apiclient.ErrNetworkUnreachable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var deleted employee.ID
			repo := &stubEmployeeRepo{delete: func(_ context.Context, id employee.ID) error {
				deleted = id
				return tt.repoErr
			}}

			err := NewEmployeeService(repo).DeleteEmployee(context.Background(), tt.id)

			if tt.expected == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.id, deleted)
				return
			}
			assert.True(t, errors.Is(err, tt.expected))
		})
	}
}

func TestEmployeeService_GetSummary(t *testing.T) {
	repo := &stubEmployeeRepo{getSummary: func(_ context.Context, id employee.ID) (employee.Summary, error) {
		assert.Equal(t, employee.ID("3"), id)
		return employee.Summary{EmployeeID: "E3", TotalPresentDays: 4}, nil
	}}
	svc := NewEmployeeService(repo)

	summary, err := svc.GetSummary(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, 4, summary.TotalPresentDays)

	_, err = svc.GetSummary(context.Background(), "")
	assert.ErrorIs(t, err, employee.ErrEmployeeIDEmpty)
}
