package staff

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/gateway"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/scope"
)

// UpdateMember replaces the editable fields of a staff member. The employee
// ID never changes. Last writer wins.
func (s *Service) UpdateMember(ctx context.Context, input UpdateMemberInput) (domain.StaffMember, error) {
	const op = "update staff"

	sc, err := scope.FromCtx(ctx)
	if err != nil {
		return domain.StaffMember{}, s.report.Failed(ctx, sc, op, "Update failed", err)
	}
	if err := input.Validate(); err != nil {
		return domain.StaffMember{}, s.report.Failed(ctx, sc, op, "Missing fields", err)
	}

	store := s.store(sc)
	current, err := store.Get(ctx, sc.Key, input.ID)
	if err != nil {
		return domain.StaffMember{}, s.report.Failed(ctx, sc, op, "Update failed", err)
	}

	next := input.apply(current)
	next.UpdatedAt = s.now().UTC()

	updated, err := store.Update(ctx, next)
	if err != nil {
		return domain.StaffMember{}, s.report.Failed(ctx, sc, op, "Update failed", err)
	}
	s.invalidate(ctx, sc, updated.EmployeeID)

	s.report.Succeeded(ctx, sc, gateway.Outcome{
		Title:    "Staff updated",
		Detail:   fmt.Sprintf("%s updated", updated.Name),
		EntityID: updated.ID.String(),
		Activity: fmt.Sprintf("Updated staff member %s", updated.Name),
	})

	s.log.InfoContext(ctx, "staff member updated",
		slog.String("mode", sc.Mode()),
		slog.String("staff_id", updated.ID.String()),
	)

	return updated, nil
}
