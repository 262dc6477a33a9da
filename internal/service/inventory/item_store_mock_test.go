package inventory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
)

var _ itemStore = &itemStoreMock{}

type itemStoreMock struct {
	ListFunc        func(ctx context.Context, ownerID uuid.UUID) ([]domain.InventoryItem, error)
	GetFunc         func(ctx context.Context, ownerID, id uuid.UUID) (domain.InventoryItem, error)
	CreateFunc      func(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error)
	UpdateFunc      func(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error)
	AdjustStockFunc func(ctx context.Context, ownerID, id uuid.UUID, delta int, today domain.Date) (domain.InventoryItem, error)
	DeleteFunc      func(ctx context.Context, ownerID, id uuid.UUID) error

	calls struct {
		List []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		Get []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      uuid.UUID
		}
		Create []struct {
			Ctx  context.Context
			Item domain.InventoryItem
		}
		Update []struct {
			Ctx  context.Context
			Item domain.InventoryItem
		}
		AdjustStock []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      uuid.UUID
			Delta   int
			Today   domain.Date
		}
		Delete []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      uuid.UUID
		}
	}
	lockList        sync.RWMutex
	lockGet         sync.RWMutex
	lockCreate      sync.RWMutex
	lockUpdate      sync.RWMutex
	lockAdjustStock sync.RWMutex
	lockDelete      sync.RWMutex
}

func (mock *itemStoreMock) List(ctx context.Context, ownerID uuid.UUID) ([]domain.InventoryItem, error) {
	if mock.ListFunc == nil {
		panic("itemStoreMock.ListFunc: method is nil but itemStore.List was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, ownerID)
}

func (mock *itemStoreMock) ListCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *itemStoreMock) Get(ctx context.Context, ownerID, id uuid.UUID) (domain.InventoryItem, error) {
	if mock.GetFunc == nil {
		panic("itemStoreMock.GetFunc: method is nil but itemStore.Get was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, ownerID, id)
}

func (mock *itemStoreMock) GetCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *itemStoreMock) Create(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error) {
	if mock.CreateFunc == nil {
		panic("itemStoreMock.CreateFunc: method is nil but itemStore.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Item domain.InventoryItem
	}{Ctx: ctx, Item: item}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, item)
}

func (mock *itemStoreMock) CreateCalls() []struct {
	Ctx  context.Context
	Item domain.InventoryItem
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *itemStoreMock) Update(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error) {
	if mock.UpdateFunc == nil {
		panic("itemStoreMock.UpdateFunc: method is nil but itemStore.Update was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Item domain.InventoryItem
	}{Ctx: ctx, Item: item}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, item)
}

func (mock *itemStoreMock) UpdateCalls() []struct {
	Ctx  context.Context
	Item domain.InventoryItem
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *itemStoreMock) AdjustStock(ctx context.Context, ownerID, id uuid.UUID, delta int, today domain.Date) (domain.InventoryItem, error) {
	if mock.AdjustStockFunc == nil {
		panic("itemStoreMock.AdjustStockFunc: method is nil but itemStore.AdjustStock was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
		Delta   int
		Today   domain.Date
	}{Ctx: ctx, OwnerID: ownerID, ID: id, Delta: delta, Today: today}
	mock.lockAdjustStock.Lock()
	mock.calls.AdjustStock = append(mock.calls.AdjustStock, callInfo)
	mock.lockAdjustStock.Unlock()
	return mock.AdjustStockFunc(ctx, ownerID, id, delta, today)
}

func (mock *itemStoreMock) AdjustStockCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
	Delta   int
	Today   domain.Date
} {
	mock.lockAdjustStock.RLock()
	calls := mock.calls.AdjustStock
	mock.lockAdjustStock.RUnlock()
	return calls
}

func (mock *itemStoreMock) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("itemStoreMock.DeleteFunc: method is nil but itemStore.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, ownerID, id)
}

func (mock *itemStoreMock) DeleteCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
