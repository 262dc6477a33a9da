package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/gateway"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/scope"
)

// UpdateItem replaces every editable field of an item. No version check is
// made, the last writer wins.
func (s *Service) UpdateItem(ctx context.Context, input UpdateItemInput) (domain.InventoryItem, error) {
	const op = "update item"

	sc, err := scope.FromCtx(ctx)
	if err != nil {
		return domain.InventoryItem{}, s.report.Failed(ctx, sc, op, "Update failed", err)
	}
	if err := input.Validate(); err != nil {
		return domain.InventoryItem{}, s.report.Failed(ctx, sc, op, "Missing fields", err)
	}

	store := s.store(sc)
	current, err := store.Get(ctx, sc.Key, input.ID)
	if err != nil {
		return domain.InventoryItem{}, s.report.Failed(ctx, sc, op, "Update failed", err)
	}

	next := input.apply(current)
	if input.LastRestocked != nil && !input.LastRestocked.IsZero() {
		next.LastRestocked = *input.LastRestocked
	}
	next.UpdatedAt = s.now().UTC()

	updated, err := store.Update(ctx, next)
	if err != nil {
		return domain.InventoryItem{}, s.report.Failed(ctx, sc, op, "Update failed", err)
	}

	s.report.Succeeded(ctx, sc, gateway.Outcome{
		Title:    "Item updated!",
		Detail:   fmt.Sprintf("%s has been updated.", updated.Name),
		EntityID: updated.ID.String(),
		Activity: fmt.Sprintf("Updated %s", updated.Name),
	})

	s.log.InfoContext(ctx, "item updated",
		slog.String("mode", sc.Mode()),
		slog.String("item_id", updated.ID.String()),
	)

	return updated.WithStatus(s.today()), nil
}
