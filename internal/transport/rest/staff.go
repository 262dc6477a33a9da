package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/staff"
)

type staffService interface {
	AddMember(ctx context.Context, input staff.AddMemberInput) (domain.StaffMember, error)
	UpdateMember(ctx context.Context, input staff.UpdateMemberInput) (domain.StaffMember, error)
	DeleteMember(ctx context.Context, input staff.DeleteMemberInput) error
	ListMembers(ctx context.Context, input staff.ListMembersInput) ([]domain.StaffMember, error)
	GetMember(ctx context.Context, id uuid.UUID) (domain.StaffMember, error)
}

// StaffHandler serves the staff collection.
type StaffHandler struct {
	svc staffService
	log *slog.Logger
}

// NewStaffHandler creates a StaffHandler.
func NewStaffHandler(svc staffService, logger *slog.Logger) *StaffHandler {
	return &StaffHandler{svc: svc, log: logger.With("handler", "staff")}
}

type memberRequest struct {
	Name     string             `json:"name"`
	Email    string             `json:"email"`
	Phone    string             `json:"phone"`
	Role     domain.StaffRole   `json:"role"`
	Address  string             `json:"address"`
	Status   domain.StaffStatus `json:"status"`
	JoinDate *domain.Date       `json:"joinDate"`
}

func (req memberRequest) fields() staff.MemberFields {
	return staff.MemberFields{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     req.Role,
		Address:  req.Address,
		Status:   req.Status,
		JoinDate: req.JoinDate,
	}
}

// List handles GET /api/staff.
func (h *StaffHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	members, err := h.svc.ListMembers(r.Context(), staff.ListMembersInput{
		Search: q.Get("search"),
		Role:   domain.StaffRole(q.Get("role")),
		Status: domain.StaffStatus(q.Get("status")),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, members)
}

// Get handles GET /api/staff/{id}.
func (h *StaffHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	m, err := h.svc.GetMember(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// Create handles POST /api/staff.
func (h *StaffHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req memberRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	m, err := h.svc.AddMember(r.Context(), staff.AddMemberInput{MemberFields: req.fields()})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

// Update handles PUT /api/staff/{id}.
func (h *StaffHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req memberRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	m, err := h.svc.UpdateMember(r.Context(), staff.UpdateMemberInput{ID: id, MemberFields: req.fields()})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// Delete handles DELETE /api/staff/{id}.
func (h *StaffHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteMember(r.Context(), staff.DeleteMemberInput{ID: id}); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
