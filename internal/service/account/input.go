package account

import (
	"net/mail"
	"strings"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt limit
	maxFieldLen    = 200
)

func validatePassword(errs []domain.FieldError, field, password string) []domain.FieldError {
	switch {
	case password == "":
		errs = append(errs, domain.FieldError{Field: field, Message: "required"})
	case len(password) < minPasswordLen:
		errs = append(errs, domain.FieldError{Field: field, Message: "must be at least 8 characters"})
	case len(password) > maxPasswordLen:
		errs = append(errs, domain.FieldError{Field: field, Message: "max 72 characters"})
	}
	return errs
}

func validateEmail(errs []domain.FieldError, email string) []domain.FieldError {
	if email == "" {
		return append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if _, err := mail.ParseAddress(email); err != nil || len(email) > maxFieldLen {
		return append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	return errs
}

func requireText(errs []domain.FieldError, field, value string) []domain.FieldError {
	switch {
	case strings.TrimSpace(value) == "":
		errs = append(errs, domain.FieldError{Field: field, Message: "required"})
	case len(value) > maxFieldLen:
		errs = append(errs, domain.FieldError{Field: field, Message: "max 200 characters"})
	}
	return errs
}

// RegisterInput holds the sign-up form.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	BusinessName    string
	PhoneNumber     string
}

func (i *RegisterInput) normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	i.BusinessName = strings.TrimSpace(i.BusinessName)
	i.PhoneNumber = strings.TrimSpace(i.PhoneNumber)
}

// Validate checks all fields and collects all errors.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError
	errs = requireText(errs, "name", i.Name)
	errs = validateEmail(errs, i.Email)
	errs = validatePassword(errs, "password", i.Password)
	if i.Password != i.ConfirmPassword {
		errs = append(errs, domain.FieldError{Field: "confirmPassword", Message: "passwords do not match"})
	}
	errs = requireText(errs, "businessName", i.BusinessName)
	errs = requireText(errs, "phoneNumber", i.PhoneNumber)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds email + password credentials.
type LoginInput struct {
	Email    string
	Password string
}

// Validate checks all fields and collects all errors.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError
	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refreshToken", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refreshToken", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateProfileInput carries partial profile changes; nil fields are kept.
type UpdateProfileInput struct {
	Name         *string
	BusinessName *string
	PhoneNumber  *string
}

// Validate checks all fields and collects all errors.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError
	if i.Name != nil {
		errs = requireText(errs, "name", *i.Name)
	}
	if i.BusinessName != nil {
		errs = requireText(errs, "businessName", *i.BusinessName)
	}
	if i.PhoneNumber != nil {
		errs = requireText(errs, "phoneNumber", *i.PhoneNumber)
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateSettingsInput carries partial notification preference changes.
type UpdateSettingsInput struct {
	EmailNotifications *bool
	LowStockAlerts     *bool
	StaffUpdates       *bool
	OrderNotifications *bool
	WeeklyReports      *bool
}

func (i UpdateSettingsInput) apply(s domain.AccountSettings) domain.AccountSettings {
	set := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	set(&s.EmailNotifications, i.EmailNotifications)
	set(&s.LowStockAlerts, i.LowStockAlerts)
	set(&s.StaffUpdates, i.StaffUpdates)
	set(&s.OrderNotifications, i.OrderNotifications)
	set(&s.WeeklyReports, i.WeeklyReports)
	return s
}

// ChangePasswordInput holds the change-password form.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

// Validate checks all fields and collects all errors.
func (i ChangePasswordInput) Validate() error {
	var errs []domain.FieldError
	if i.CurrentPassword == "" {
		errs = append(errs, domain.FieldError{Field: "currentPassword", Message: "required"})
	}
	errs = validatePassword(errs, "newPassword", i.NewPassword)
	if i.NewPassword != i.ConfirmPassword {
		errs = append(errs, domain.FieldError{Field: "confirmPassword", Message: "passwords do not match"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
