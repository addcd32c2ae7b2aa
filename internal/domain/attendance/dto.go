package attendance

import (
	"net/url"
	"strings"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// MarkAttendanceRequest is the body of POST /api/attendance/mark/.
type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,max=20"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	Status     Status `json:"status" validate:"required,oneof=PRESENT ABSENT"`
}

// Validate checks the wire shape only. Submission rules live in
// ValidateSubmission and run first.
func (r *MarkAttendanceRequest) Validate() error {
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.Date = strings.TrimSpace(r.Date)
	return validator.Struct(r)
}

// NewMarkAttendanceRequest builds the request body from a form that passed
// BeginSubmit.
func NewMarkAttendanceRequest(f *Form) MarkAttendanceRequest {
	return MarkAttendanceRequest{
		EmployeeID: f.EmployeeID,
		Date:       f.Date,
		Status:     f.Status,
	}
}

// AttendanceFilter narrows GET /api/attendance/.
type AttendanceFilter struct {
	Date       string `json:"date,omitempty"`        // YYYY-MM-DD
	EmployeeID string `json:"employee_id,omitempty"` // human readable employee code
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	f.Date = strings.TrimSpace(f.Date)
	f.EmployeeID = strings.TrimSpace(f.EmployeeID)

	if f.Date != "" {
		if _, valid := validator.IsValidDate(f.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Query encodes the non-empty filter fields as URL query parameters.
func (f AttendanceFilter) Query() url.Values {
	q := url.Values{}
	if f.Date != "" {
		q.Set("date", f.Date)
	}
	if f.EmployeeID != "" {
		q.Set("employee_id", f.EmployeeID)
	}
	return q
}

// ========================================
// SCREEN DTOs
// ========================================

// Screen is everything the attendance page renders.
type Screen struct {
	Today     string
	Employees []employee.Employee
	Records   []Record
	Counts    Counts
	Form      *Form
	Filter    AttendanceFilter
	Error     string
}

// CanMark reports whether the marking form should be enabled.
func (s Screen) CanMark() bool {
	return len(s.Employees) > 0 && (s.Form == nil || !s.Form.Busy())
}
