package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is a restaurant owner's sign-in identity and business profile.
// Every owner-scoped collection hangs off Account.ID.
type Account struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	BusinessName string    `json:"businessName"`
	PhoneNumber  string    `json:"phoneNumber"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AccountSettings holds notification preferences and the trial window.
type AccountSettings struct {
	AccountID          uuid.UUID `json:"-"`
	EmailNotifications bool      `json:"emailNotifications"`
	LowStockAlerts     bool      `json:"lowStockAlerts"`
	StaffUpdates       bool      `json:"staffUpdates"`
	OrderNotifications bool      `json:"orderNotifications"`
	WeeklyReports      bool      `json:"weeklyReports"`
	TrialEndsOn        Date      `json:"trialEndsOn"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// DefaultAccountSettings enables every notification except weekly reports
// and starts a trial of trialDays from today.
func DefaultAccountSettings(accountID uuid.UUID, today Date, trialDays int) AccountSettings {
	return AccountSettings{
		AccountID:          accountID,
		EmailNotifications: true,
		LowStockAlerts:     true,
		StaffUpdates:       true,
		OrderNotifications: true,
		WeeklyReports:      false,
		TrialEndsOn:        today.AddDays(trialDays),
	}
}

// TrialDaysRemaining returns whole days left in the trial, never negative.
func (s AccountSettings) TrialDaysRemaining(today Date) int {
	if s.TrialEndsOn.IsZero() || !s.TrialEndsOn.After(today) {
		return 0
	}
	return int(s.TrialEndsOn.Time().Sub(today.Time()).Hours() / 24)
}

// RefreshToken is a hashed refresh token stored for an account. The raw
// token only ever exists on the client.
type RefreshToken struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
