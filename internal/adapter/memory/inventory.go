package memory

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
)

// InventoryStore is the guest-mode inventory store. The owner key is the
// guest session ID.
type InventoryStore struct {
	*Store[domain.InventoryItem]
}

// NewInventoryStore creates an empty guest inventory store.
func NewInventoryStore() *InventoryStore {
	return &InventoryStore{
		Store: NewStore("inventory_item", func(i domain.InventoryItem) uuid.UUID { return i.ID }),
	}
}

// List returns the session's items, most recently restocked first.
func (s *InventoryStore) List(_ context.Context, session uuid.UUID) ([]domain.InventoryItem, error) {
	items := s.Store.List(session)
	slices.SortStableFunc(items, func(a, b domain.InventoryItem) int {
		return b.LastRestocked.Compare(a.LastRestocked)
	})
	return items, nil
}

func (s *InventoryStore) Get(_ context.Context, session, id uuid.UUID) (domain.InventoryItem, error) {
	return s.Store.Get(session, id)
}

func (s *InventoryStore) Create(_ context.Context, item domain.InventoryItem) (domain.InventoryItem, error) {
	if err := s.Insert(item.OwnerID, item); err != nil {
		return domain.InventoryItem{}, err
	}
	return item, nil
}

func (s *InventoryStore) Update(_ context.Context, item domain.InventoryItem) (domain.InventoryItem, error) {
	return s.Modify(item.OwnerID, item.ID, func(old domain.InventoryItem) domain.InventoryItem {
		item.CreatedAt = old.CreatedAt
		return item
	})
}

// AdjustStock applies the delta atomically with respect to other writers of
// the same session.
func (s *InventoryStore) AdjustStock(_ context.Context, session, id uuid.UUID, delta int, today domain.Date) (domain.InventoryItem, error) {
	return s.Modify(session, id, func(old domain.InventoryItem) domain.InventoryItem {
		next := domain.ApplyStockDelta(old, delta, today)
		next.UpdatedAt = s.now().UTC()
		return next
	})
}

func (s *InventoryStore) Delete(_ context.Context, session, id uuid.UUID) error {
	return s.Store.Delete(session, id)
}
