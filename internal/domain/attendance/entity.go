package attendance

import "github.com/cmlabs-hris/hrms-lite/internal/domain/employee"

// Status is the attendance status of a record. Values other than PRESENT and
// ABSENT may arrive from the server and must be tolerated.
type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
)

// IsValid reports whether s is one of the statuses the client may submit.
func (s Status) IsValid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// Label returns the display label used in tables and selects.
func (s Status) Label() string {
	switch s {
	case StatusPresent:
		return "Present"
	case StatusAbsent:
		return "Absent"
	default:
		return string(s)
	}
}

// EmployeeRef is the employee snapshot embedded in an attendance record.
type EmployeeRef struct {
	ID         employee.ID `json:"id"`
	EmployeeID string      `json:"employee_id"`
	FullName   string      `json:"full_name"`
	Department string      `json:"department"`
}

// Record is one attendance row. IDs use the same opaque encoding as employees.
type Record struct {
	ID        employee.ID  `json:"id"`
	Date      string       `json:"date"` // YYYY-MM-DD
	Status    Status       `json:"status"`
	Employee  *EmployeeRef `json:"employee"`
	CreatedAt string       `json:"created_at,omitempty"`
}

// EmployeeCode returns the employee_id of the embedded snapshot, or "" when
// the snapshot is missing.
func (r Record) EmployeeCode() string {
	if r.Employee == nil {
		return ""
	}
	return r.Employee.EmployeeID
}
