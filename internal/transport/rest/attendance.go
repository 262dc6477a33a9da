package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/attendance"
)

type attendanceService interface {
	Lookup(ctx context.Context, rawEmployeeID string) (attendance.LookupResult, error)
	Load(ctx context.Context, rawEmployeeID string) (domain.AttendanceRecord, error)
	ClockIn(ctx context.Context, rawEmployeeID string) (attendance.LookupResult, error)
	ClockOut(ctx context.Context, rawEmployeeID string) (attendance.LookupResult, error)
	ListForDay(ctx context.Context, day domain.Date) ([]domain.AttendanceRecord, error)
}

// AttendanceHandler serves the clock-in terminal and the attendance board.
type AttendanceHandler struct {
	svc attendanceService
	log *slog.Logger
}

// NewAttendanceHandler creates an AttendanceHandler.
func NewAttendanceHandler(svc attendanceService, logger *slog.Logger) *AttendanceHandler {
	return &AttendanceHandler{svc: svc, log: logger.With("handler", "attendance")}
}

type lookupRequest struct {
	EmployeeID string `json:"employeeId"`
}

type recordResponse struct {
	Record     domain.AttendanceRecord   `json:"record"`
	Transition domain.Transition         `json:"transition,omitempty"`
	Actions    []domain.AttendanceAction `json:"actions"`
}

func toRecordResponse(rec domain.AttendanceRecord, t domain.Transition) recordResponse {
	actions := rec.Actions()
	if actions == nil {
		actions = []domain.AttendanceAction{}
	}
	return recordResponse{Record: rec, Transition: t, Actions: actions}
}

// Lookup handles POST /api/attendance/lookup: the terminal toggle.
func (h *AttendanceHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	var req lookupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	res, err := h.svc.Lookup(r.Context(), req.EmployeeID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecordResponse(res.Record, res.Transition))
}

// Board handles GET /api/attendance?date=YYYY-MM-DD.
func (h *AttendanceHandler) Board(w http.ResponseWriter, r *http.Request) {
	day, err := queryDate(r, "date")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	records, err := h.svc.ListForDay(r.Context(), day)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// Get handles GET /api/attendance/{employeeId}.
func (h *AttendanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.Load(r.Context(), mux.Vars(r)["employeeId"])
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecordResponse(rec, ""))
}

// ClockIn handles POST /api/attendance/{employeeId}/clock-in.
func (h *AttendanceHandler) ClockIn(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.ClockIn(r.Context(), mux.Vars(r)["employeeId"])
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecordResponse(res.Record, res.Transition))
}

// ClockOut handles POST /api/attendance/{employeeId}/clock-out.
func (h *AttendanceHandler) ClockOut(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.ClockOut(r.Context(), mux.Vars(r)["employeeId"])
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecordResponse(res.Record, res.Transition))
}
