package report

import (
	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/shopspring/decimal"
)

// ========================================
// ATTENDANCE SUMMARY
// ========================================

// SummaryRow is one employee's totals over the loaded attendance records.
type SummaryRow struct {
	EmployeeID string          `json:"employee_id"`
	FullName   string          `json:"full_name"`
	Department string          `json:"department"`
	Present    int             `json:"present"`
	Absent     int             `json:"absent"`
	Rate       decimal.Decimal `json:"rate"`
}

// Total is the number of counted records for the row.
func (r SummaryRow) Total() int {
	return r.Present + r.Absent
}

// AttendanceSummary is what the summary page and the export render.
type AttendanceSummary struct {
	GeneratedAt string                      `json:"generated_at"`
	Filter      attendance.AttendanceFilter `json:"filter"`
	Rows        []SummaryRow                `json:"rows"`
	Records     []attendance.Record         `json:"-"`
}

var hundred = decimal.NewFromInt(100)

// AttendanceRate returns present / (present + absent) * 100 rounded to one
// decimal place, or zero when there are no records.
func AttendanceRate(present, absent int) decimal.Decimal {
	total := present + absent
	if total <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(present)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(total))).
		Round(1)
}

// Summarize builds one row per employee in directory order.
func Summarize(employees []employee.Employee, counts attendance.Counts) []SummaryRow {
	rows := make([]SummaryRow, 0, len(employees))
	for _, e := range employees {
		present := counts.Present(e.EmployeeID)
		absent := counts.Absent(e.EmployeeID)
		rows = append(rows, SummaryRow{
			EmployeeID: e.EmployeeID,
			FullName:   e.FullName,
			Department: e.Department,
			Present:    present,
			Absent:     absent,
			Rate:       AttendanceRate(present, absent),
		})
	}
	return rows
}
