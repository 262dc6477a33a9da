package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/account"
)

type profileService interface {
	GetProfile(ctx context.Context) (account.Profile, error)
	UpdateProfile(ctx context.Context, input account.UpdateProfileInput) (domain.Account, error)
	GetSettings(ctx context.Context) (domain.AccountSettings, error)
	UpdateSettings(ctx context.Context, input account.UpdateSettingsInput) (domain.AccountSettings, error)
	ChangePassword(ctx context.Context, input account.ChangePasswordInput) error
}

// AccountHandler serves the signed-in account's profile and settings.
type AccountHandler struct {
	svc profileService
	log *slog.Logger
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(svc profileService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{svc: svc, log: logger.With("handler", "account")}
}

type updateProfileRequest struct {
	Name         *string `json:"name"`
	BusinessName *string `json:"businessName"`
	PhoneNumber  *string `json:"phoneNumber"`
}

type updateSettingsRequest struct {
	EmailNotifications *bool `json:"emailNotifications"`
	LowStockAlerts     *bool `json:"lowStockAlerts"`
	StaffUpdates       *bool `json:"staffUpdates"`
	OrderNotifications *bool `json:"orderNotifications"`
	WeeklyReports      *bool `json:"weeklyReports"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// GetProfile handles GET /api/account.
func (h *AccountHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.GetProfile(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// UpdateProfile handles PUT /api/account.
func (h *AccountHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	acc, err := h.svc.UpdateProfile(r.Context(), account.UpdateProfileInput{
		Name:         req.Name,
		BusinessName: req.BusinessName,
		PhoneNumber:  req.PhoneNumber,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, acc)
}

// GetSettings handles GET /api/account/settings.
func (h *AccountHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.GetSettings(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// UpdateSettings handles PUT /api/account/settings.
func (h *AccountHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	settings, err := h.svc.UpdateSettings(r.Context(), account.UpdateSettingsInput{
		EmailNotifications: req.EmailNotifications,
		LowStockAlerts:     req.LowStockAlerts,
		StaffUpdates:       req.StaffUpdates,
		OrderNotifications: req.OrderNotifications,
		WeeklyReports:      req.WeeklyReports,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// ChangePassword handles POST /api/account/password.
func (h *AccountHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	err := h.svc.ChangePassword(r.Context(), account.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
