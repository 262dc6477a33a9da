package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/gateway"
)

// CreateShift schedules a shift.
func (s *Service) CreateShift(ctx context.Context, input CreateShiftInput) (domain.Shift, error) {
	const op = "create shift"

	sc, err := ownerScope(ctx)
	if err != nil {
		return domain.Shift{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Shift{}, s.shiftReport.Failed(ctx, sc, op, "Missing fields", err)
	}

	shift, err := s.shifts.Create(ctx, domain.Shift{
		ID:        uuid.New(),
		OwnerID:   sc.Key,
		StaffName: strings.TrimSpace(input.StaffName),
		Role:      input.Role,
		Date:      input.Date,
		Start:     *input.Start,
		End:       *input.End,
	})
	if err != nil {
		return domain.Shift{}, s.shiftReport.Failed(ctx, sc, op, "Save failed", err)
	}

	s.shiftReport.Succeeded(ctx, sc, gateway.Outcome{
		Title:    "Shift scheduled",
		Detail:   fmt.Sprintf("%s on %s, %s-%s", shift.StaffName, shift.Date, shift.Start, shift.End),
		EntityID: shift.ID.String(),
		Activity: fmt.Sprintf("Scheduled %s (%s) on %s", shift.StaffName, shift.Role, shift.Date),
	})

	s.log.InfoContext(ctx, "shift created", slog.String("shift_id", shift.ID.String()))

	return shift, nil
}

// ListShifts returns shifts from input.From on, earliest first.
func (s *Service) ListShifts(ctx context.Context, input ListShiftsInput) ([]domain.Shift, error) {
	sc, err := ownerScope(ctx)
	if err != nil {
		return nil, err
	}
	if input.Limit < 0 {
		return nil, domain.NewValidationError("limit", "must not be negative")
	}

	from := input.From
	if from.IsZero() {
		from = domain.DateOf(s.now().In(s.loc))
	}

	shifts, err := s.shifts.List(ctx, sc.Key, from, input.Limit)
	if err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	return shifts, nil
}

// DeleteShift removes a shift.
func (s *Service) DeleteShift(ctx context.Context, input DeleteShiftInput) error {
	const op = "delete shift"

	sc, err := ownerScope(ctx)
	if err != nil {
		return err
	}
	if err := input.Validate(); err != nil {
		return s.shiftReport.Failed(ctx, sc, op, "Delete failed", err)
	}

	if err := s.shifts.Delete(ctx, sc.Key, input.ID); err != nil {
		return s.shiftReport.Failed(ctx, sc, op, "Delete failed", err)
	}

	s.shiftReport.Succeeded(ctx, sc, gateway.Outcome{
		Title:    "Shift removed",
		EntityID: input.ID.String(),
	})

	s.log.InfoContext(ctx, "shift deleted", slog.String("shift_id", input.ID.String()))
	return nil
}
