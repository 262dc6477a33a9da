package attendance

import (
	"strings"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
)

// normalizeEmployeeID trims the ID and rejects an empty one.
func normalizeEmployeeID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return "", domain.NewValidationError("employeeId", "Please enter your employee ID.")
	}
	return id, nil
}

// RangeInput selects attendance records between two days, inclusive.
type RangeInput struct {
	From domain.Date
	To   domain.Date
}

// Validate checks all fields and collects all errors.
func (i RangeInput) Validate() error {
	var errs []domain.FieldError
	if i.From.IsZero() {
		errs = append(errs, domain.FieldError{Field: "from", Message: "required"})
	}
	if i.To.IsZero() {
		errs = append(errs, domain.FieldError{Field: "to", Message: "required"})
	}
	if !i.From.IsZero() && !i.To.IsZero() && i.To.Before(i.From) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must not be before from"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
