package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/scope"
)

// ListItems returns the caller's items with statuses derived for today,
// filtered and sorted by input. Without a sort key the store order is kept
// (most recently restocked first).
func (s *Service) ListItems(ctx context.Context, input ListItemsInput) ([]domain.InventoryItem, error) {
	sc, err := scope.FromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	items, err := s.store(sc).List(ctx, sc.Key)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	return domain.FilterInventory(domain.ProjectInventory(items, s.today()), input.filter()), nil
}

// GetItem returns one item with its status derived for today.
func (s *Service) GetItem(ctx context.Context, id uuid.UUID) (domain.InventoryItem, error) {
	sc, err := scope.FromCtx(ctx)
	if err != nil {
		return domain.InventoryItem{}, err
	}
	if id == uuid.Nil {
		return domain.InventoryItem{}, domain.NewValidationError("id", "required")
	}

	item, err := s.store(sc).Get(ctx, sc.Key, id)
	if err != nil {
		return domain.InventoryItem{}, fmt.Errorf("get item: %w", err)
	}
	return item.WithStatus(s.today()), nil
}
