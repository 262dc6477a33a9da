package staff

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AFTLlimited25/Platrr-Business/internal/service/gateway"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/scope"
)

// DeleteMember removes a staff member. Attendance history is kept.
func (s *Service) DeleteMember(ctx context.Context, input DeleteMemberInput) error {
	const op = "delete staff"

	sc, err := scope.FromCtx(ctx)
	if err != nil {
		return s.report.Failed(ctx, sc, op, "Delete failed", err)
	}
	if err := input.Validate(); err != nil {
		return s.report.Failed(ctx, sc, op, "Delete failed", err)
	}

	store := s.store(sc)
	member, err := store.Get(ctx, sc.Key, input.ID)
	if err != nil {
		return s.report.Failed(ctx, sc, op, "Delete failed", err)
	}
	if err := store.Delete(ctx, sc.Key, input.ID); err != nil {
		return s.report.Failed(ctx, sc, op, "Delete failed", err)
	}
	s.invalidate(ctx, sc, member.EmployeeID)

	s.report.Succeeded(ctx, sc, gateway.Outcome{
		Title:    "Staff removed",
		Detail:   fmt.Sprintf("%s removed", member.Name),
		EntityID: member.ID.String(),
		Activity: fmt.Sprintf("Removed staff member %s", member.Name),
	})

	s.log.InfoContext(ctx, "staff member deleted",
		slog.String("mode", sc.Mode()),
		slog.String("staff_id", member.ID.String()),
	)

	return nil
}
