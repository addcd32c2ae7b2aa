package attendance

import "errors"

// Attendance domain errors
var (
	// Submission rules, checked before any request is issued
	ErrMissingEmployee      = errors.New("please select an employee")
	ErrMissingDate          = errors.New("please select a date")
	ErrFutureDateNotAllowed = errors.New("attendance cannot be marked for a future date")
	ErrPresentOnlyToday     = errors.New("present can only be marked for today")
	ErrInvalidStatus        = errors.New("status must be PRESENT or ABSENT")

	// Form state machine
	ErrInvalidTransition = errors.New("invalid attendance form transition")
)
