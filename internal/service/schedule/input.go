package schedule

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
)

// CreateOrderInput records a completed sale.
type CreateOrderInput struct {
	TotalAmount decimal.Decimal
	PlacedAt    *time.Time // nil = now
	Note        string
}

// Validate checks all fields and collects all errors.
func (i CreateOrderInput) Validate() error {
	var errs []domain.FieldError
	if !i.TotalAmount.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "totalAmount", Message: "must be positive"})
	}
	if len(i.Note) > 500 {
		errs = append(errs, domain.FieldError{Field: "note", Message: "max 500 characters"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateShiftInput schedules a working slot.
type CreateShiftInput struct {
	StaffName string
	Role      domain.StaffRole
	Date      domain.Date
	Start     *domain.ClockTime
	End       *domain.ClockTime
}

// Validate checks all fields and collects all errors. An end earlier than
// the start is a shift across midnight and is allowed.
func (i CreateShiftInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.StaffName) == "" {
		errs = append(errs, domain.FieldError{Field: "staffName", Message: "required"})
	}
	if i.Role == "" {
		errs = append(errs, domain.FieldError{Field: "role", Message: "required"})
	} else if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "unknown role"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if i.Start == nil {
		errs = append(errs, domain.FieldError{Field: "start", Message: "required"})
	}
	if i.End == nil {
		errs = append(errs, domain.FieldError{Field: "end", Message: "required"})
	}
	if i.Start != nil && i.End != nil && *i.Start == *i.End {
		errs = append(errs, domain.FieldError{Field: "end", Message: "must differ from start"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListShiftsInput selects upcoming shifts.
type ListShiftsInput struct {
	From  domain.Date // zero = today
	Limit int         // 0 = all
}

// DeleteShiftInput holds the parameters for deleting a shift.
type DeleteShiftInput struct {
	ID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteShiftInput) Validate() error {
	if i.ID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	return nil
}
