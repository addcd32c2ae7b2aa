package attendance

import (
	"context"
	"errors"
	"log/slog"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/apiclient"
	"golang.org/x/sync/errgroup"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
	}
}

// Load implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Load(ctx context.Context, today string, filter attendance.AttendanceFilter) (attendance.Screen, error) {
	screen := attendance.Screen{
		Today:     today,
		Employees: []employee.Employee{},
		Records:   []attendance.Record{},
		Counts:    attendance.Aggregate(nil),
		Form:      attendance.NewForm(today, ""),
		Filter:    filter,
	}

	if err := filter.Validate(); err != nil {
		screen.Error = validationMessage(err)
		return screen, err
	}
	screen.Filter = filter

	var (
		employees []employee.Employee
		records   []attendance.Record
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		data, err := s.EmployeeRepository.List(gCtx)
		if err != nil {
			return err
		}
		employees = data
		return nil
	})

	g.Go(func() error {
		data, err := s.AttendanceRepository.List(gCtx, filter)
		if err != nil {
			return err
		}
		records = data
		return nil
	})

	// Both lists or neither: partial data is never shown.
	if err := g.Wait(); err != nil {
		slog.Error("Failed to load attendance screen", "error", err, "kind", apiclient.KindOf(err))
		screen.Error = apiclient.Message(err)
		return screen, err
	}

	screen.Employees = employees
	screen.Records = records
	screen.Counts = attendance.Aggregate(records)
	if len(employees) > 0 {
		screen.Form.EmployeeID = employees[0].EmployeeID
	}

	return screen, nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Record, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.AttendanceRepository.List(ctx, filter)
}

// Submit implements attendance.AttendanceService.
//
// The form and the request are validated before any call to the API; the
// screen is only loaded afterwards so the page can be re-rendered. A
// successful mark is always followed by a full re-fetch of the records;
// nothing is inserted locally.
func (s *AttendanceServiceImpl) Submit(ctx context.Context, today string, form *attendance.Form, filter attendance.AttendanceFilter) (attendance.Screen, error) {
	if err := s.validateSubmission(today, form); err != nil {
		// The validation error wins over any failure to load the page.
		screen, _ := s.Load(ctx, today, filter)
		screen.Form = form
		return screen, err
	}

	screen, err := s.Load(ctx, today, filter)
	if err != nil {
		// Nothing was marked; the load failure is reported on the form.
		_ = form.Fail(screen.Error)
		_ = form.Resume()
		screen.Error = ""
		screen.Form = form
		return screen, err
	}
	screen.Form = form

	req := attendance.NewMarkAttendanceRequest(form)
	if _, err := s.AttendanceRepository.Mark(ctx, req); err != nil {
		slog.Error("Failed to mark attendance", "error", err, "kind", apiclient.KindOf(err),
			"employee_id", req.EmployeeID, "date", req.Date, "status", req.Status)
		_ = form.Fail(apiclient.Message(err))
		_ = form.Resume()
		return screen, err
	}
	_ = form.Succeed()

	records, err := s.ListAttendance(ctx, filter)
	if err != nil {
		slog.Error("Failed to refresh attendance after mark", "error", err)
		_ = form.Fail(apiclient.Message(err))
		_ = form.Resume()
		return screen, err
	}
	_ = form.Refreshed()

	screen.Records = records
	screen.Counts = attendance.Aggregate(records)
	return screen, nil
}

// validateSubmission runs the submission rules and the request validation.
// On success the form is left Submitting.
func (s *AttendanceServiceImpl) validateSubmission(today string, form *attendance.Form) error {
	if err := form.BeginSubmit(today); err != nil {
		return err
	}

	req := attendance.NewMarkAttendanceRequest(form)
	if err := req.Validate(); err != nil {
		_ = form.Fail(validationMessage(err))
		_ = form.Resume()
		return err
	}
	return nil
}

func validationMessage(err error) string {
	var fieldErrs interface{ First() string }
	if errors.As(err, &fieldErrs) {
		return fieldErrs.First()
	}
	return err.Error()
}
