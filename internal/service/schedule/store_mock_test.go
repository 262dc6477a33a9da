package schedule

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
)

var _ orderRepo = &orderRepoMock{}

type orderRepoMock struct {
	CreateFunc func(ctx context.Context, o domain.Order) (domain.Order, error)
	ListFunc   func(ctx context.Context, ownerID uuid.UUID) ([]domain.Order, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			O   domain.Order
		}
		List []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
	}
	lockCreate sync.RWMutex
	lockList   sync.RWMutex
}

func (mock *orderRepoMock) Create(ctx context.Context, o domain.Order) (domain.Order, error) {
	if mock.CreateFunc == nil {
		panic("orderRepoMock.CreateFunc: method is nil but orderRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		O   domain.Order
	}{Ctx: ctx, O: o}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, o)
}

func (mock *orderRepoMock) CreateCalls() []struct {
	Ctx context.Context
	O   domain.Order
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *orderRepoMock) List(ctx context.Context, ownerID uuid.UUID) ([]domain.Order, error) {
	if mock.ListFunc == nil {
		panic("orderRepoMock.ListFunc: method is nil but orderRepo.List was just called")
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

func (mock *orderRepoMock) ListCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ shiftRepo = &shiftRepoMock{}

type shiftRepoMock struct {
	CreateFunc func(ctx context.Context, s domain.Shift) (domain.Shift, error)
	ListFunc   func(ctx context.Context, ownerID uuid.UUID, from domain.Date, limit int) ([]domain.Shift, error)
	DeleteFunc func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			S   domain.Shift
		}
		List []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			From    domain.Date
			Limit   int
		}
		Delete []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      uuid.UUID
		}
	}
	lockCreate sync.RWMutex
	lockList   sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *shiftRepoMock) Create(ctx context.Context, s domain.Shift) (domain.Shift, error) {
	if mock.CreateFunc == nil {
		panic("shiftRepoMock.CreateFunc: method is nil but shiftRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.Shift
	}{Ctx: ctx, S: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *shiftRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   domain.Shift
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *shiftRepoMock) List(ctx context.Context, ownerID uuid.UUID, from domain.Date, limit int) ([]domain.Shift, error) {
	if mock.ListFunc == nil {
		panic("shiftRepoMock.ListFunc: method is nil but shiftRepo.List was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		From    domain.Date
		Limit   int
	}{Ctx: ctx, OwnerID: ownerID, From: from, Limit: limit}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, ownerID, from, limit)
}

func (mock *shiftRepoMock) ListCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	From    domain.Date
	Limit   int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *shiftRepoMock) Delete(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("shiftRepoMock.DeleteFunc: method is nil but shiftRepo.Delete was just called")
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

func (mock *shiftRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ activityReader = &activityReaderMock{}

type activityReaderMock struct {
	ListRecentFunc func(ctx context.Context, ownerID uuid.UUID, limit int) ([]domain.Activity, error)

	calls struct {
		ListRecent []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Limit   int
		}
	}
	lockListRecent sync.RWMutex
}

func (mock *activityReaderMock) ListRecent(ctx context.Context, ownerID uuid.UUID, limit int) ([]domain.Activity, error) {
	if mock.ListRecentFunc == nil {
		panic("activityReaderMock.ListRecentFunc: method is nil but activityReader.ListRecent was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Limit   int
	}{Ctx: ctx, OwnerID: ownerID, Limit: limit}
	mock.lockListRecent.Lock()
	mock.calls.ListRecent = append(mock.calls.ListRecent, callInfo)
	mock.lockListRecent.Unlock()
	return mock.ListRecentFunc(ctx, ownerID, limit)
}

func (mock *activityReaderMock) ListRecentCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Limit   int
} {
	mock.lockListRecent.RLock()
	calls := mock.calls.ListRecent
	mock.lockListRecent.RUnlock()
	return calls
}
