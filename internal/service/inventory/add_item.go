package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/gateway"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/scope"
)

// AddItem stores a new item for the signed-in owner, or for the guest
// session when nobody is signed in. lastRestocked starts at today.
func (s *Service) AddItem(ctx context.Context, input AddItemInput) (domain.InventoryItem, error) {
	const op = "add item"

	sc, err := scope.FromCtx(ctx)
	if err != nil {
		return domain.InventoryItem{}, s.report.Failed(ctx, sc, op, "Add failed", err)
	}
	if err := input.Validate(); err != nil {
		return domain.InventoryItem{}, s.report.Failed(ctx, sc, op, "Missing fields", err)
	}

	today := s.today()
	now := s.now().UTC()
	item := input.apply(domain.InventoryItem{
		ID:            uuid.New(),
		OwnerID:       sc.Key,
		LastRestocked: today,
		CreatedAt:     now,
		UpdatedAt:     now,
	})

	created, err := s.store(sc).Create(ctx, item)
	if err != nil {
		return domain.InventoryItem{}, s.report.Failed(ctx, sc, op, "Add failed", err)
	}

	s.report.Succeeded(ctx, sc, gateway.Outcome{
		Title:    "Item added!",
		Detail:   fmt.Sprintf("%s has been added to inventory.", created.Name),
		EntityID: created.ID.String(),
		Activity: fmt.Sprintf("Added %s to inventory", created.Name),
	})

	s.log.InfoContext(ctx, "item added",
		slog.String("mode", sc.Mode()),
		slog.String("item_id", created.ID.String()),
		slog.String("name", created.Name),
	)

	return created.WithStatus(today), nil
}
