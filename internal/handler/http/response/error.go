package response

import (
	"errors"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
)

// StatusFor maps an error onto the status code a rendered page is sent with.
func StatusFor(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return http.StatusUnprocessableEntity
	}

	switch {
	// Attendance submission rules
	case errors.Is(err, attendance.ErrMissingEmployee),
		errors.Is(err, attendance.ErrMissingDate),
		errors.Is(err, attendance.ErrFutureDateNotAllowed),
		errors.Is(err, attendance.ErrPresentOnlyToday),
		errors.Is(err, attendance.ErrInvalidStatus):
		return http.StatusUnprocessableEntity
	case errors.Is(err, attendance.ErrInvalidTransition):
		return http.StatusConflict

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		return http.StatusNotFound
	case errors.Is(err, employee.ErrEmployeeIDEmpty):
		return http.StatusBadRequest
	}

	// HRMS API failures
	switch apiclient.KindOf(err) {
	case apiclient.KindServerValidation:
		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) {
			return apiErr.StatusCode
		}
		return http.StatusBadRequest
	case apiclient.KindNetworkUnreachable:
		return http.StatusBadGateway
	}

	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// MessageFor derives the inline text shown for an error.
func MessageFor(err error) string {
	if err == nil {
		return ""
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return sentence(validationErrs.First())
	}

	switch {
	case errors.Is(err, attendance.ErrMissingEmployee),
		errors.Is(err, attendance.ErrMissingDate),
		errors.Is(err, attendance.ErrFutureDateNotAllowed),
		errors.Is(err, attendance.ErrPresentOnlyToday),
		errors.Is(err, attendance.ErrInvalidStatus),
		errors.Is(err, attendance.ErrInvalidTransition),
		errors.Is(err, employee.ErrEmployeeIDEmpty):
		return sentence(domainError(err).Error())
	case errors.Is(err, employee.ErrEmployeeNotFound):
		return "Employee not found."
	}

	return apiclient.Message(err)
}

// domainError unwraps to the innermost error so wrapping context is not shown.
func domainError(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

// sentence capitalises msg and ends it with a period.
func sentence(msg string) string {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return msg
	}
	r, size := utf8.DecodeRuneInString(msg)
	msg = string(unicode.ToUpper(r)) + msg[size:]
	if !strings.HasSuffix(msg, ".") {
		msg += "."
	}
	return msg
}
