package restapi

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/apiclient"
)

type attendanceRepositoryImpl struct {
	transport *apiclient.Transport
}

func NewAttendanceRepository(transport *apiclient.Transport) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{transport: transport}
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Record, error) {
	var records []attendance.Record
	if err := a.transport.Get(ctx, "/api/attendance/", filter.Query(), &records); err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	if records == nil {
		records = []attendance.Record{}
	}
	return records, nil
}

// Mark implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.Record, error) {
	var created attendance.Record
	if err := a.transport.Post(ctx, "/api/attendance/mark/", req, &created); err != nil {
		return attendance.Record{}, fmt.Errorf("failed to mark attendance for %s on %s: %w", req.EmployeeID, req.Date, err)
	}
	return created, nil
}
