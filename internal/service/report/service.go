package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/report"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"
)

const (
	recordsSheet = "Records"
	summarySheet = "Summary"
)

type ReportServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	now            func() time.Time
}

func NewReportService(employeeRepo employee.EmployeeRepository, attendanceRepo attendance.AttendanceRepository) report.ReportService {
	return &ReportServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

// Summary implements report.ReportService.
func (s *ReportServiceImpl) Summary(ctx context.Context, filter attendance.AttendanceFilter) (report.AttendanceSummary, error) {
	if err := filter.Validate(); err != nil {
		return report.AttendanceSummary{}, err
	}

	var (
		employees []employee.Employee
		records   []attendance.Record
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		data, err := s.employeeRepo.List(gCtx)
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}
		employees = data
		return nil
	})

	g.Go(func() error {
		data, err := s.attendanceRepo.List(gCtx, filter)
		if err != nil {
			return fmt.Errorf("failed to list attendance: %w", err)
		}
		records = data
		return nil
	})

	if err := g.Wait(); err != nil {
		return report.AttendanceSummary{}, err
	}

	if filter.EmployeeID != "" {
		employees = onlyEmployee(employees, filter.EmployeeID)
	}

	return report.AttendanceSummary{
		GeneratedAt: s.now().Format(time.RFC3339),
		Filter:      filter,
		Rows:        report.Summarize(employees, attendance.Aggregate(records)),
		Records:     records,
	}, nil
}

func onlyEmployee(employees []employee.Employee, employeeID string) []employee.Employee {
	out := make([]employee.Employee, 0, 1)
	for _, e := range employees {
		if e.EmployeeID == employeeID {
			out = append(out, e)
		}
	}
	return out
}

// ExportXLSX implements report.ReportService.
func (s *ReportServiceImpl) ExportXLSX(ctx context.Context, filter attendance.AttendanceFilter, w io.Writer) error {
	summary, err := s.Summary(ctx, filter)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("Failed to close workbook", "error", err)
		}
	}()

	if err := writeWorkbook(f, summary); err != nil {
		return fmt.Errorf("%w: %w", report.ErrReportGenerationFailed, err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	slog.Info("Attendance export generated", "records", len(summary.Records), "employees", len(summary.Rows))
	return nil
}

func writeWorkbook(f *excelize.File, summary report.AttendanceSummary) error {
	if err := f.SetSheetName("Sheet1", recordsSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	// Records
	if err := f.SetSheetRow(recordsSheet, "A1", &[]any{"Date", "Employee ID", "Full Name", "Department", "Status"}); err != nil {
		return err
	}
	for i, r := range summary.Records {
		var fullName, department string
		if r.Employee != nil {
			fullName = r.Employee.FullName
			department = r.Employee.Department
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{r.Date, r.EmployeeCode(), fullName, department, r.Status.Label()}
		if err := f.SetSheetRow(recordsSheet, cell, &row); err != nil {
			return err
		}
	}

	// Summary
	if err := f.SetSheetRow(summarySheet, "A1", &[]any{"Employee ID", "Full Name", "Department", "Present", "Absent", "Rate (%)"}); err != nil {
		return err
	}
	for i, r := range summary.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{r.EmployeeID, r.FullName, r.Department, r.Present, r.Absent, r.Rate.InexactFloat64()}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}

	for _, sheet := range []struct {
		name string
		last string
	}{{recordsSheet, "E"}, {summarySheet, "F"}} {
		if err := f.SetCellStyle(sheet.name, "A1", sheet.last+"1", header); err != nil {
			return err
		}
		if err := f.SetColWidth(sheet.name, "A", sheet.last, 18); err != nil {
			return err
		}
	}

	return nil
}
