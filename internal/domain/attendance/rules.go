package attendance

// Dates are compared as YYYY-MM-DD strings. Zero-padded fixed width makes
// lexicographic order equal calendar order, so no time zone math happens here.

// DefaultStatusFor returns the status the form should hold once candidateDate
// is selected. PRESENT is only valid for today, so it is downgraded to ABSENT
// for any other date; every other status is returned unchanged.
func DefaultStatusFor(candidateDate, today string, current Status) Status {
	if candidateDate != today && current == StatusPresent {
		return StatusAbsent
	}
	return current
}

// ValidateSubmission checks a marking request against the submission rules.
// The first failing rule wins, in this order: employee, date, future date,
// present-only-today.
func ValidateSubmission(candidateDate, today string, requested Status, employeeSelected bool) error {
	if !employeeSelected {
		return ErrMissingEmployee
	}
	if candidateDate == "" {
		return ErrMissingDate
	}
	if candidateDate > today {
		return ErrFutureDateNotAllowed
	}
	if requested == StatusPresent && candidateDate != today {
		return ErrPresentOnlyToday
	}
	return nil
}
