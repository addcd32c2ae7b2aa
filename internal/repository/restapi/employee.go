package restapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/apiclient"
)

type employeeRepositoryImpl struct {
	transport *apiclient.Transport
}

func NewEmployeeRepository(transport *apiclient.Transport) employee.EmployeeRepository {
	return &employeeRepositoryImpl{transport: transport}
}

func employeePath(id employee.ID) string {
	return "/api/employees/" + url.PathEscape(id.String()) + "/"
}

// notFound tags a 404 with employee.ErrEmployeeNotFound, keeping the API error.
func notFound(err error) error {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %w", employee.ErrEmployeeNotFound, err)
	}
	return err
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	var employees []employee.Employee
	if err := e.transport.Get(ctx, "/api/employees/", nil, &employees); err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	if employees == nil {
		employees = []employee.Employee{}
	}
	return employees, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	var created employee.Employee
	if err := e.transport.Post(ctx, "/api/employees/", req, &created); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee %s: %w", req.EmployeeID, err)
	}
	return created, nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id employee.ID) error {
	if id == "" {
		return employee.ErrEmployeeIDEmpty
	}
	if err := e.transport.Delete(ctx, employeePath(id)); err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", id, notFound(err))
	}
	return nil
}

// GetSummary implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetSummary(ctx context.Context, id employee.ID) (employee.Summary, error) {
	if id == "" {
		return employee.Summary{}, employee.ErrEmployeeIDEmpty
	}
	var summary employee.Summary
	if err := e.transport.Get(ctx, employeePath(id)+"summary/", nil, &summary); err != nil {
		return employee.Summary{}, fmt.Errorf("failed to get summary for employee %s: %w", id, notFound(err))
	}
	return summary, nil
}
