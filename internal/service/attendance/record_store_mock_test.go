package attendance

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
)

var _ recordStore = &recordStoreMock{}

type recordStoreMock struct {
	GetFunc            func(ctx context.Context, ownerID uuid.UUID, id string) (domain.AttendanceRecord, error)
	GetByIDsFunc       func(ctx context.Context, ownerID uuid.UUID, ids []string) ([]domain.AttendanceRecord, error)
	ListRangeFunc      func(ctx context.Context, ownerID uuid.UUID, from domain.Date, to domain.Date) ([]domain.AttendanceRecord, error)
	CreateIfAbsentFunc func(ctx context.Context, rec domain.AttendanceRecord) (domain.AttendanceRecord, error)
	CompareAndSwapFunc func(ctx context.Context, next domain.AttendanceRecord, expected domain.AttendanceStatus) (domain.AttendanceRecord, bool, error)

	calls struct {
		Get []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      string
		}
		GetByIDs []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Ids     []string
		}
		ListRange []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			From    domain.Date
			To      domain.Date
		}
		CreateIfAbsent []struct {
			Ctx context.Context
			Rec domain.AttendanceRecord
		}
		CompareAndSwap []struct {
			Ctx      context.Context
			Next     domain.AttendanceRecord
			Expected domain.AttendanceStatus
		}
	}
	lockGet            sync.RWMutex
	lockGetByIDs       sync.RWMutex
	lockListRange      sync.RWMutex
	lockCreateIfAbsent sync.RWMutex
	lockCompareAndSwap sync.RWMutex
}

func (mock *recordStoreMock) Get(ctx context.Context, ownerID uuid.UUID, id string) (domain.AttendanceRecord, error) {
	if mock.GetFunc == nil {
		panic("recordStoreMock.GetFunc: method is nil but recordStore.Get was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      string
	}{Ctx: ctx, OwnerID: ownerID, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, ownerID, id)
}

func (mock *recordStoreMock) GetCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *recordStoreMock) GetByIDs(ctx context.Context, ownerID uuid.UUID, ids []string) ([]domain.AttendanceRecord, error) {
	if mock.GetByIDsFunc == nil {
		panic("recordStoreMock.GetByIDsFunc: method is nil but recordStore.GetByIDs was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Ids     []string
	}{Ctx: ctx, OwnerID: ownerID, Ids: ids}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, callInfo)
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, ownerID, ids)
}

func (mock *recordStoreMock) GetByIDsCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Ids     []string
} {
	mock.lockGetByIDs.RLock()
	calls := mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}

func (mock *recordStoreMock) ListRange(ctx context.Context, ownerID uuid.UUID, from domain.Date, to domain.Date) ([]domain.AttendanceRecord, error) {
	if mock.ListRangeFunc == nil {
		panic("recordStoreMock.ListRangeFunc: method is nil but recordStore.ListRange was just called")
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

func (mock *recordStoreMock) ListRangeCalls() []struct {
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

func (mock *recordStoreMock) CreateIfAbsent(ctx context.Context, rec domain.AttendanceRecord) (domain.AttendanceRecord, error) {
	if mock.CreateIfAbsentFunc == nil {
		panic("recordStoreMock.CreateIfAbsentFunc: method is nil but recordStore.CreateIfAbsent was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec domain.AttendanceRecord
	}{Ctx: ctx, Rec: rec}
	mock.lockCreateIfAbsent.Lock()
	mock.calls.CreateIfAbsent = append(mock.calls.CreateIfAbsent, callInfo)
	mock.lockCreateIfAbsent.Unlock()
	return mock.CreateIfAbsentFunc(ctx, rec)
}

func (mock *recordStoreMock) CreateIfAbsentCalls() []struct {
	Ctx context.Context
	Rec domain.AttendanceRecord
} {
	mock.lockCreateIfAbsent.RLock()
	calls := mock.calls.CreateIfAbsent
	mock.lockCreateIfAbsent.RUnlock()
	return calls
}

func (mock *recordStoreMock) CompareAndSwap(ctx context.Context, next domain.AttendanceRecord, expected domain.AttendanceStatus) (domain.AttendanceRecord, bool, error) {
	if mock.CompareAndSwapFunc == nil {
		panic("recordStoreMock.CompareAndSwapFunc: method is nil but recordStore.CompareAndSwap was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Next     domain.AttendanceRecord
		Expected domain.AttendanceStatus
	}{Ctx: ctx, Next: next, Expected: expected}
	mock.lockCompareAndSwap.Lock()
	mock.calls.CompareAndSwap = append(mock.calls.CompareAndSwap, callInfo)
	mock.lockCompareAndSwap.Unlock()
	return mock.CompareAndSwapFunc(ctx, next, expected)
}

func (mock *recordStoreMock) CompareAndSwapCalls() []struct {
	Ctx      context.Context
	Next     domain.AttendanceRecord
	Expected domain.AttendanceStatus
} {
	mock.lockCompareAndSwap.RLock()
	calls := mock.calls.CompareAndSwap
	mock.lockCompareAndSwap.RUnlock()
	return calls
}
