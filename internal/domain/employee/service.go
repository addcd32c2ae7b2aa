package employee

import (
	"context"
)

// EmployeeService drives the employee directory screen
type EmployeeService interface {
	// ListEmployees retrieves the full directory
	ListEmployees(ctx context.Context) ([]Employee, error)

	// CreateEmployee validates and creates an employee
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (Employee, error)

	// DeleteEmployee deletes an employee; the server cascades its attendance
	DeleteEmployee(ctx context.Context, id ID) error

	// GetSummary retrieves the present-day total for an employee
	GetSummary(ctx context.Context, id ID) (Summary, error)
}
