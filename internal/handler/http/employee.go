package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/handler/http/response"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

const employeesPage = "employees.html"

var employeeNotices = map[string]string{
	"created": "Employee added.",
	"deleted": "Employee deleted.",
}

type EmployeeHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// ListEmployees implements EmployeeHandler
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	dir := employee.Directory{Notice: employeeNotices[r.URL.Query().Get("notice")]}
	h.renderDirectory(w, r, dir, nil)
}

// CreateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		slog.Warn("Failed to parse employee form", "error", err)
		http.Error(w, "Invalid form body", http.StatusBadRequest)
		return
	}

	req := employee.CreateEmployeeRequest{
		EmployeeID: r.PostForm.Get("employee_id"),
		FullName:   r.PostForm.Get("full_name"),
		Email:      r.PostForm.Get("email"),
		Department: r.PostForm.Get("department"),
	}

	if _, err := h.employeeService.CreateEmployee(r.Context(), req); err != nil {
		// Keep what the user typed so the form can be corrected.
		h.renderDirectory(w, r, employee.Directory{Form: req}, err)
		return
	}

	http.Redirect(w, r, "/employees?notice=created", http.StatusSeeOther)
}

// DeleteEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id := employee.ID(chi.URLParam(r, "id"))

	if err := h.employeeService.DeleteEmployee(r.Context(), id); err != nil {
		h.renderDirectory(w, r, employee.Directory{}, err)
		return
	}

	http.Redirect(w, r, "/employees?notice=deleted", http.StatusSeeOther)
}

// GetSummary implements EmployeeHandler
func (h *employeeHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	id := employee.ID(chi.URLParam(r, "id"))

	summary, err := h.employeeService.GetSummary(r.Context(), id)
	if err != nil {
		slog.Error("Failed to get employee summary", "id", id, "error", err)
		response.HTML(w, response.StatusFor(err), "employee_summary.html", response.Page{
			Title:  "Employee Summary",
			Active: "employees",
			Error:  response.MessageFor(err),
		})
		return
	}

	response.HTML(w, http.StatusOK, "employee_summary.html", response.Page{
		Title:  "Employee Summary",
		Active: "employees",
		Body:   summary,
	})
}

// renderDirectory reloads the list and renders it with actionErr, if any,
// taking precedence over a list failure.
func (h *employeeHandlerImpl) renderDirectory(w http.ResponseWriter, r *http.Request, dir employee.Directory, actionErr error) {
	employees, listErr := h.employeeService.ListEmployees(r.Context())
	dir.Employees = employees

	status := http.StatusOK
	switch {
	case actionErr != nil:
		status = response.StatusFor(actionErr)
		dir.Error = response.MessageFor(actionErr)
		var validationErrs validator.ValidationErrors
		if errors.As(actionErr, &validationErrs) {
			dir.FieldErrors = validationErrs.ToMap()
		}
	case listErr != nil:
		status = response.StatusFor(listErr)
		dir.Error = response.MessageFor(listErr)
	}

	response.HTML(w, status, employeesPage, response.Page{
		Title:  "Employees",
		Active: "employees",
		Notice: dir.Notice,
		Error:  dir.Error,
		Body:   dir,
	})
}
