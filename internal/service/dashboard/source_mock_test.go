package dashboard

import (
	"context"
	"sync"
	"time"

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

var _ staffLister = &staffListerMock{}

type staffListerMock struct {
	ListFunc func(ctx context.Context, ownerID uuid.UUID) ([]domain.StaffMember, error)

	calls struct {
		List []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
	}
	lockList sync.RWMutex
}

func (mock *staffListerMock) List(ctx context.Context, ownerID uuid.UUID) ([]domain.StaffMember, error) {
	if mock.ListFunc == nil {
		panic("staffListerMock.ListFunc: method is nil but staffLister.List was just called")
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

func (mock *staffListerMock) ListCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ orderTotaler = &orderTotalerMock{}

type orderTotalerMock struct {
	TotalsBetweenFunc func(ctx context.Context, ownerID uuid.UUID, from time.Time, to time.Time) (domain.OrderTotals, error)

	calls struct {
		TotalsBetween []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			From    time.Time
			To      time.Time
		}
	}
	lockTotalsBetween sync.RWMutex
}

func (mock *orderTotalerMock) TotalsBetween(ctx context.Context, ownerID uuid.UUID, from time.Time, to time.Time) (domain.OrderTotals, error) {
	if mock.TotalsBetweenFunc == nil {
		panic("orderTotalerMock.TotalsBetweenFunc: method is nil but orderTotaler.TotalsBetween was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		From    time.Time
		To      time.Time
	}{Ctx: ctx, OwnerID: ownerID, From: from, To: to}
	mock.lockTotalsBetween.Lock()
	mock.calls.TotalsBetween = append(mock.calls.TotalsBetween, callInfo)
	mock.lockTotalsBetween.Unlock()
	return mock.TotalsBetweenFunc(ctx, ownerID, from, to)
}

func (mock *orderTotalerMock) TotalsBetweenCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	From    time.Time
	To      time.Time
} {
	mock.lockTotalsBetween.RLock()
	calls := mock.calls.TotalsBetween
	mock.lockTotalsBetween.RUnlock()
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

var _ shiftLister = &shiftListerMock{}

type shiftListerMock struct {
	ListFunc func(ctx context.Context, ownerID uuid.UUID, from domain.Date, limit int) ([]domain.Shift, error)

	calls struct {
		List []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			From    domain.Date
			Limit   int
		}
	}
	lockList sync.RWMutex
}

func (mock *shiftListerMock) List(ctx context.Context, ownerID uuid.UUID, from domain.Date, limit int) ([]domain.Shift, error) {
	if mock.ListFunc == nil {
		panic("shiftListerMock.ListFunc: method is nil but shiftLister.List was just called")
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

func (mock *shiftListerMock) ListCalls() []struct {
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

var _ settingsReader = &settingsReaderMock{}

type settingsReaderMock struct {
	GetSettingsFunc func(ctx context.Context, accountID uuid.UUID) (domain.AccountSettings, error)

	calls struct {
		GetSettings []struct {
			Ctx       context.Context
			AccountID uuid.UUID
		}
	}
	lockGetSettings sync.RWMutex
}

func (mock *settingsReaderMock) GetSettings(ctx context.Context, accountID uuid.UUID) (domain.AccountSettings, error) {
	if mock.GetSettingsFunc == nil {
		panic("settingsReaderMock.GetSettingsFunc: method is nil but settingsReader.GetSettings was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
	}{Ctx: ctx, AccountID: accountID}
	mock.lockGetSettings.Lock()
	mock.calls.GetSettings = append(mock.calls.GetSettings, callInfo)
	mock.lockGetSettings.Unlock()
	return mock.GetSettingsFunc(ctx, accountID)
}

func (mock *settingsReaderMock) GetSettingsCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
} {
	mock.lockGetSettings.RLock()
	calls := mock.calls.GetSettings
	mock.lockGetSettings.RUnlock()
	return calls
}
