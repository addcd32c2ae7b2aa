package http

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/handler/http/response"
)

const attendancePage = "attendance.html"

var attendanceNotices = map[string]string{
	"marked": "Attendance marked.",
}

// filterFrom reads the record list filter from query or form values.
func filterFrom(values url.Values) attendance.AttendanceFilter {
	return attendance.AttendanceFilter{
		Date:       strings.TrimSpace(values.Get("filter_date")),
		EmployeeID: strings.TrimSpace(values.Get("filter_employee_id")),
	}
}

type AttendanceHandler interface {
	ShowAttendance(w http.ResponseWriter, r *http.Request)
	MarkAttendance(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	clock             Clock
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, clock Clock) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		clock:             clock,
	}
}

// ShowAttendance implements AttendanceHandler.
//
// The query string re-renders the marking form: employee_id, status and date
// are applied in that order so a PRESENT selection is downgraded when the
// date moves off today. filter_date and filter_employee_id narrow the record
// list.
func (h *attendanceHandlerImpl) ShowAttendance(w http.ResponseWriter, r *http.Request) {
	today := h.clock.Today()
	q := r.URL.Query()
	filter := filterFrom(q)

	screen, err := h.attendanceService.Load(r.Context(), today, filter)
	if err != nil {
		h.render(w, response.StatusFor(err), screen, "", err)
		return
	}

	if v := q.Get("employee_id"); v != "" {
		_ = screen.Form.SetEmployee(v)
	}
	if v := q.Get("status"); v != "" {
		if err := screen.Form.SetStatus(attendance.Status(strings.ToUpper(v))); err != nil {
			screen.Form.Error = response.MessageFor(err)
		}
	}
	if v := q.Get("date"); v != "" {
		_ = screen.Form.SetDate(v, today)
	}

	h.render(w, http.StatusOK, screen, attendanceNotices[q.Get("notice")], nil)
}

// MarkAttendance implements AttendanceHandler. The posted values are taken
// as submitted; the submission rules decide whether they are acceptable. A
// successful mark redirects back to the screen with the form values kept.
func (h *attendanceHandlerImpl) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		slog.Warn("Failed to parse attendance form", "error", err)
		http.Error(w, "Invalid form body", http.StatusBadRequest)
		return
	}

	today := h.clock.Today()
	filter := filterFrom(r.PostForm)

	form := attendance.NewForm(today, strings.TrimSpace(r.PostForm.Get("employee_id")))
	form.Date = strings.TrimSpace(r.PostForm.Get("date"))
	form.Status = attendance.Status(strings.ToUpper(strings.TrimSpace(r.PostForm.Get("status"))))

	screen, err := h.attendanceService.Submit(r.Context(), today, form, filter)
	if err != nil {
		slog.Info("Attendance not marked", "employee_id", form.EmployeeID, "date", form.Date,
			"status", form.Status, "error", err)
		h.render(w, response.StatusFor(err), screen, "", err)
		return
	}

	slog.Info("Attendance marked", "employee_id", form.EmployeeID, "date", form.Date, "status", form.Status)
	http.Redirect(w, r, markedLocation(form, filter), http.StatusSeeOther)
}

func markedLocation(form *attendance.Form, filter attendance.AttendanceFilter) string {
	q := url.Values{"notice": {"marked"}}
	q.Set("employee_id", form.EmployeeID)
	q.Set("status", string(form.Status))
	q.Set("date", form.Date)
	if filter.Date != "" {
		q.Set("filter_date", filter.Date)
	}
	if filter.EmployeeID != "" {
		q.Set("filter_employee_id", filter.EmployeeID)
	}
	return "/attendance?" + q.Encode()
}

func (h *attendanceHandlerImpl) render(w http.ResponseWriter, status int, screen attendance.Screen, notice string, err error) {
	if screen.Form == nil {
		screen.Form = attendance.NewForm(screen.Today, "")
	}

	// Errors raised while submitting belong to the form; load errors to the page.
	if err != nil {
		if screen.Form.Error != "" {
			screen.Form.Error = response.MessageFor(err)
		} else {
			screen.Error = response.MessageFor(err)
		}
	}

	response.HTML(w, status, attendancePage, response.Page{
		Title:  "Attendance",
		Active: "attendance",
		Notice: notice,
		Error:  screen.Error,
		Body:   screen,
	})
}
