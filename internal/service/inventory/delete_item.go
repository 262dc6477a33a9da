package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AFTLlimited25/Platrr-Business/internal/service/gateway"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/scope"
)

// DeleteItem removes an item.
func (s *Service) DeleteItem(ctx context.Context, input DeleteItemInput) error {
	const op = "delete item"

	sc, err := scope.FromCtx(ctx)
	if err != nil {
		return s.report.Failed(ctx, sc, op, "Delete failed", err)
	}
	if err := input.Validate(); err != nil {
		return s.report.Failed(ctx, sc, op, "Delete failed", err)
	}

	store := s.store(sc)
	item, err := store.Get(ctx, sc.Key, input.ID)
	if err != nil {
		return s.report.Failed(ctx, sc, op, "Delete failed", err)
	}
	if err := store.Delete(ctx, sc.Key, input.ID); err != nil {
		return s.report.Failed(ctx, sc, op, "Delete failed", err)
	}

	s.report.Succeeded(ctx, sc, gateway.Outcome{
		Title:    "Item removed",
		Detail:   fmt.Sprintf("%s has been removed from inventory.", item.Name),
		EntityID: item.ID.String(),
		Activity: fmt.Sprintf("Removed %s from inventory", item.Name),
	})

	s.log.InfoContext(ctx, "item deleted",
		slog.String("mode", sc.Mode()),
		slog.String("item_id", input.ID.String()),
	)

	return nil
}
