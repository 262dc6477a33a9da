package report

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
)

var _ inventoryLister = &inventoryListerMock{}

type inventoryListerMock struct {
	ListFunc func(ctx context.Context, ownerID uuid.UUID) ([]domain.InventoryItem, error)

	calls struct {
		List []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
	}
	lockList sync.RWMutex
}

func (mock *inventoryListerMock) List(ctx context.Context, ownerID uuid.UUID) ([]domain.InventoryItem, error) {
	if mock.ListFunc == nil {
		panic("inventoryListerMock.ListFunc: method is nil but inventoryLister.List was just called")
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

func (mock *inventoryListerMock) ListCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ attendanceRanger = &attendanceRangerMock{}

type attendanceRangerMock struct {
	ListRangeFunc func(ctx context.Context, ownerID uuid.UUID, from domain.Date, to domain.Date) ([]domain.AttendanceRecord, error)

	calls struct {
		ListRange []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			From    domain.Date
			To      domain.Date
		}
	}
	lockListRange sync.RWMutex
}

func (mock *attendanceRangerMock) ListRange(ctx context.Context, ownerID uuid.UUID, from domain.Date, to domain.Date) ([]domain.AttendanceRecord, error) {
	if mock.ListRangeFunc == nil {
		panic("attendanceRangerMock.ListRangeFunc: method is nil but attendanceRanger.ListRange was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		From    domain.Date
		To      domain.Date
	}{Ctx: ctx, OwnerID: ownerID, From: from, To: to}
	mock.lockListRange.Lock()
	mock.calls.ListRange = append(mock.calls.ListRange, callInfo)
	mock.lockListRange.Unlock()
	return mock.ListRangeFunc(ctx, ownerID, from, to)
}

func (mock *attendanceRangerMock) ListRangeCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	From    domain.Date
	To      domain.Date
} {
	mock.lockListRange.RLock()
	calls := mock.calls.ListRange
	mock.lockListRange.RUnlock()
	return calls
}

var _ accountReader = &accountReaderMock{}

type accountReaderMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (domain.Account, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *accountReaderMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Account, error) {
	if mock.GetByIDFunc == nil {
		panic("accountReaderMock.GetByIDFunc: method is nil but accountReader.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *accountReaderMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
