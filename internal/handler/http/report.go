package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/report"
	"github.com/cmlabs-hris/hrms-lite/internal/handler/http/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler interface {
	AttendanceSummary(w http.ResponseWriter, r *http.Request)
	ExportAttendance(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
	clock         Clock
}

func NewReportHandler(reportService report.ReportService, clock Clock) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
		clock:         clock,
	}
}

// AttendanceSummary implements ReportHandler
func (h *reportHandlerImpl) AttendanceSummary(w http.ResponseWriter, r *http.Request) {
	filter := filterFrom(r.URL.Query())

	summary, err := h.reportService.Summary(r.Context(), filter)
	if err != nil {
		slog.Error("Failed to build attendance summary", "error", err)
		response.HTML(w, response.StatusFor(err), "attendance_summary.html", response.Page{
			Title:  "Attendance Summary",
			Active: "summary",
			Error:  response.MessageFor(err),
		})
		return
	}

	response.HTML(w, http.StatusOK, "attendance_summary.html", response.Page{
		Title:  "Attendance Summary",
		Active: "summary",
		Body:   summary,
	})
}

// ExportAttendance implements ReportHandler. The workbook is built in memory
// so a failure can still be reported as a page.
func (h *reportHandlerImpl) ExportAttendance(w http.ResponseWriter, r *http.Request) {
	filter := filterFrom(r.URL.Query())

	var buf bytes.Buffer
	if err := h.reportService.ExportXLSX(r.Context(), filter, &buf); err != nil {
		slog.Error("Failed to export attendance", "error", err)
		response.HTML(w, response.StatusFor(err), "attendance_summary.html", response.Page{
			Title:  "Attendance Summary",
			Active: "summary",
			Error:  response.MessageFor(err),
		})
		return
	}

	name := "attendance-" + h.clock.Today()
	if filter.Date != "" {
		name = "attendance-" + filter.Date
	}
	if filter.EmployeeID != "" {
		name += "-" + filter.EmployeeID
	}
	name += ".xlsx"

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
