package employee

import (
	"strings"

	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
)

// CreateEmployeeRequest is the body of POST /api/employees/.
type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,max=20"`
	FullName   string `json:"full_name" validate:"required,max=120"`
	Email      string `json:"email" validate:"required,email"`
	Department string `json:"department" validate:"required,max=80"`
}

func (r *CreateEmployeeRequest) Validate() error {
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(r.Email)
	r.Department = strings.TrimSpace(r.Department)
	return validator.Struct(r)
}

// Directory is everything the employee page renders. FieldErrors is keyed by
// the form field name.
type Directory struct {
	Employees   []Employee
	Form        CreateEmployeeRequest
	FieldErrors map[string]string
	Error       string
	Notice      string
}
