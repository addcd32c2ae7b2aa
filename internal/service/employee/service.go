package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/apiclient"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		slog.Error("Failed to list employees", "error", err, "kind", apiclient.KindOf(err))
		return []employee.Employee{}, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	// Validate request before any call leaves the process
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	created, err := s.employeeRepo.Create(ctx, req)
	if err != nil {
		slog.Warn("Employee creation rejected", "employee_id", req.EmployeeID, "error", err, "kind", apiclient.KindOf(err))
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	slog.Info("Employee created", "id", created.ID, "employee_id", created.EmployeeID)
	return created, nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id employee.ID) error {
	if id == "" {
		return employee.ErrEmployeeIDEmpty
	}

	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return err
		}
		slog.Error("Failed to delete employee", "id", id, "error", err, "kind", apiclient.KindOf(err))
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	slog.Info("Employee deleted", "id", id)
	return nil
}

// GetSummary implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetSummary(ctx context.Context, id employee.ID) (employee.Summary, error) {
	if id == "" {
		return employee.Summary{}, employee.ErrEmployeeIDEmpty
	}

	summary, err := s.employeeRepo.GetSummary(ctx, id)
	if err != nil {
		return employee.Summary{}, fmt.Errorf("failed to get employee summary: %w", err)
	}
	return summary, nil
}
