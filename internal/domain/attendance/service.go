package attendance

import (
	"context"
)

// AttendanceService drives the attendance screen.
type AttendanceService interface {
	// Load fetches employees and records concurrently. Both must succeed;
	// on failure both lists are empty and the error is returned.
	Load(ctx context.Context, today string, filter AttendanceFilter) (Screen, error)

	// ListAttendance re-fetches the record list for the given filter
	ListAttendance(ctx context.Context, filter AttendanceFilter) ([]Record, error)

	// Submit validates the form, marks attendance and refreshes the records.
	// The returned screen always carries the form in its final state.
	Submit(ctx context.Context, today string, form *Form, filter AttendanceFilter) (Screen, error)
}
