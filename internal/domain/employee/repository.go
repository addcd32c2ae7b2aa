package employee

import (
	"context"
)

// EmployeeRepository is the employee resource of the HRMS API.
type EmployeeRepository interface {
	List(ctx context.Context) ([]Employee, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	Delete(ctx context.Context, id ID) error
	GetSummary(ctx context.Context, id ID) (Summary, error)
}
