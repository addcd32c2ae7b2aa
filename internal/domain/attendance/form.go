package attendance

import "strings"

type FormState string

const (
	FormEditing    FormState = "editing"
	FormSubmitting FormState = "submitting"
	FormSucceeded  FormState = "succeeded"
	FormFailed     FormState = "failed"
)

// Form is the in-progress attendance marking form.
//
//	Editing    -> Submitting  BeginSubmit, when ValidateSubmission passes
//	Submitting -> Succeeded   Succeed, once the server accepted the record
//	Succeeded  -> Editing     Refreshed, error cleared
//	Submitting -> Failed      Fail
//	Succeeded  -> Failed      Fail, when the refresh after submit fails
//	Failed     -> Editing     Resume, error kept for display
//
// A rejected BeginSubmit leaves the form in Editing with the error set.
type Form struct {
	EmployeeID string
	Date       string
	Status     Status
	State      FormState
	Error      string
}

// NewForm returns a form in Editing for today, preselecting PRESENT and the
// given employee (may be empty).
func NewForm(today, employeeID string) *Form {
	return &Form{
		EmployeeID: employeeID,
		Date:       today,
		Status:     StatusPresent,
		State:      FormEditing,
	}
}

func (f *Form) editable() error {
	if f.State != FormEditing {
		return ErrInvalidTransition
	}
	return nil
}

func (f *Form) SetEmployee(employeeID string) error {
	if err := f.editable(); err != nil {
		return err
	}
	f.EmployeeID = strings.TrimSpace(employeeID)
	return nil
}

// SetDate selects a new candidate date and silently downgrades PRESENT when
// the date is not today.
func (f *Form) SetDate(date, today string) error {
	if err := f.editable(); err != nil {
		return err
	}
	f.Date = strings.TrimSpace(date)
	f.Status = DefaultStatusFor(f.Date, today, f.Status)
	return nil
}

func (f *Form) SetStatus(status Status) error {
	if err := f.editable(); err != nil {
		return err
	}
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	f.Status = status
	return nil
}

// BeginSubmit validates the form against today. On success the form moves to
// Submitting; otherwise it stays in Editing with the validation error set and
// that error is returned.
func (f *Form) BeginSubmit(today string) error {
	if err := f.editable(); err != nil {
		return err
	}
	f.Error = ""
	if err := ValidateSubmission(f.Date, today, f.Status, f.EmployeeID != ""); err != nil {
		f.Error = err.Error()
		return err
	}
	f.State = FormSubmitting
	return nil
}

func (f *Form) Succeed() error {
	if f.State != FormSubmitting {
		return ErrInvalidTransition
	}
	f.State = FormSucceeded
	return nil
}

// Refreshed completes a successful submission once the record list has been
// reloaded.
func (f *Form) Refreshed() error {
	if f.State != FormSucceeded {
		return ErrInvalidTransition
	}
	f.State = FormEditing
	f.Error = ""
	return nil
}

func (f *Form) Fail(message string) error {
	if f.State != FormSubmitting && f.State != FormSucceeded {
		return ErrInvalidTransition
	}
	f.State = FormFailed
	f.Error = message
	return nil
}

// Resume returns a failed form to Editing so the user can resubmit manually.
func (f *Form) Resume() error {
	if f.State != FormFailed {
		return ErrInvalidTransition
	}
	f.State = FormEditing
	return nil
}

// Busy reports whether a submission is in flight.
func (f *Form) Busy() bool {
	return f.State == FormSubmitting
}
