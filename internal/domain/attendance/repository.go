package attendance

import (
	"context"
)

// AttendanceRepository is the attendance resource of the HRMS API.
type AttendanceRepository interface {
	// List retrieves attendance records, optionally filtered by date and employee
	List(ctx context.Context, filter AttendanceFilter) ([]Record, error)

	// Mark creates a new attendance record
	Mark(ctx context.Context, req MarkAttendanceRequest) (Record, error)
}
