package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/AFTLlimited25/Platrr-Business/internal/service/dashboard"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/report"
)

type dashboardService interface {
	Summary(ctx context.Context) (dashboard.Summary, error)
}

type reportService interface {
	Inventory(ctx context.Context) (report.InventoryReport, error)
	InventoryPDF(ctx context.Context) ([]byte, error)
	Attendance(ctx context.Context, in report.AttendanceInput) (report.AttendanceReport, error)
	AttendancePDF(ctx context.Context, in report.AttendanceInput) ([]byte, error)
}

// ReportHandler serves the dashboard summary and the downloadable reports.
type ReportHandler struct {
	dashboard dashboardService
	reports   reportService
	log       *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(dash dashboardService, reports reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{dashboard: dash, reports: reports, log: logger.With("handler", "report")}
}

// Dashboard handles GET /api/dashboard.
func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sum, err := h.dashboard.Summary(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

// Inventory handles GET /api/reports/inventory.
func (h *ReportHandler) Inventory(w http.ResponseWriter, r *http.Request) {
	rep, err := h.reports.Inventory(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

// InventoryPDF handles GET /api/reports/inventory.pdf.
func (h *ReportHandler) InventoryPDF(w http.ResponseWriter, r *http.Request) {
	body, err := h.reports.InventoryPDF(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writePDF(w, "inventory-report.pdf", body)
}

// Attendance handles GET /api/reports/attendance?from=&to=.
func (h *ReportHandler) Attendance(w http.ResponseWriter, r *http.Request) {
	in, err := attendanceWindow(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	rep, err := h.reports.Attendance(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

// AttendancePDF handles GET /api/reports/attendance.pdf?from=&to=.
func (h *ReportHandler) AttendancePDF(w http.ResponseWriter, r *http.Request) {
	in, err := attendanceWindow(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	body, err := h.reports.AttendancePDF(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writePDF(w, "attendance-report.pdf", body)
}

func attendanceWindow(r *http.Request) (report.AttendanceInput, error) {
	from, err := queryDate(r, "from")
	if err != nil {
		return report.AttendanceInput{}, err
	}
	to, err := queryDate(r, "to")
	if err != nil {
		return report.AttendanceInput{}, err
	}
	return report.AttendanceInput{From: from, To: to}, nil
}
