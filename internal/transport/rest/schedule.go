package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/schedule"
)

type scheduleService interface {
	CreateOrder(ctx context.Context, input schedule.CreateOrderInput) (domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	CreateShift(ctx context.Context, input schedule.CreateShiftInput) (domain.Shift, error)
	ListShifts(ctx context.Context, input schedule.ListShiftsInput) ([]domain.Shift, error)
	DeleteShift(ctx context.Context, input schedule.DeleteShiftInput) error
	ListActivity(ctx context.Context, limit int) ([]domain.Activity, error)
}

// ScheduleHandler serves orders, shifts and the activity feed.
type ScheduleHandler struct {
	svc scheduleService
	log *slog.Logger
}

// NewScheduleHandler creates a ScheduleHandler.
func NewScheduleHandler(svc scheduleService, logger *slog.Logger) *ScheduleHandler {
	return &ScheduleHandler{svc: svc, log: logger.With("handler", "schedule")}
}

type orderRequest struct {
	TotalAmount decimal.Decimal `json:"totalAmount"`
	PlacedAt    *time.Time      `json:"placedAt"`
	Note        string          `json:"note"`
}

type shiftRequest struct {
	StaffName string            `json:"staffName"`
	Role      domain.StaffRole  `json:"role"`
	Date      domain.Date       `json:"date"`
	Start     *domain.ClockTime `json:"start"`
	End       *domain.ClockTime `json:"end"`
}

// ListOrders handles GET /api/orders.
func (h *ScheduleHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.ListOrders(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// CreateOrder handles POST /api/orders.
func (h *ScheduleHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	o, err := h.svc.CreateOrder(r.Context(), schedule.CreateOrderInput{
		TotalAmount: req.TotalAmount,
		PlacedAt:    req.PlacedAt,
		Note:        req.Note,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, o)
}

// ListShifts handles GET /api/shifts?from=YYYY-MM-DD&limit=N.
func (h *ScheduleHandler) ListShifts(w http.ResponseWriter, r *http.Request) {
	from, err := queryDate(r, "from")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	shifts, err := h.svc.ListShifts(r.Context(), schedule.ListShiftsInput{From: from, Limit: limit})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, shifts)
}

// CreateShift handles POST /api/shifts.
func (h *ScheduleHandler) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req shiftRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	s, err := h.svc.CreateShift(r.Context(), schedule.CreateShiftInput{
		StaffName: req.StaffName,
		Role:      req.Role,
		Date:      req.Date,
		Start:     req.Start,
		End:       req.End,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, s)
}

// DeleteShift handles DELETE /api/shifts/{id}.
func (h *ScheduleHandler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteShift(r.Context(), schedule.DeleteShiftInput{ID: id}); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListActivity handles GET /api/activity?limit=N.
func (h *ScheduleHandler) ListActivity(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	items, err := h.svc.ListActivity(r.Context(), limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
