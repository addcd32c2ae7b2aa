package report

import (
	"context"
	"io"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
)

// ReportService defines the interface for report generation
type ReportService interface {
	// Summary loads the directory and the filtered records and totals them per employee
	Summary(ctx context.Context, filter attendance.AttendanceFilter) (AttendanceSummary, error)

	// ExportXLSX writes the records and the summary as an XLSX workbook
	ExportXLSX(ctx context.Context, filter attendance.AttendanceFilter, w io.Writer) error
}
