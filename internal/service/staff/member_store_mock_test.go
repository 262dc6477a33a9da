package staff

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
)

var _ memberStore = &memberStoreMock{}

type memberStoreMock struct {
	ListFunc        func(ctx context.Context, ownerID uuid.UUID) ([]domain.StaffMember, error)
	GetFunc         func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (domain.StaffMember, error)
	CreateFunc      func(ctx context.Context, m domain.StaffMember) (domain.StaffMember, error)
	UpdateFunc      func(ctx context.Context, m domain.StaffMember) (domain.StaffMember, error)
	DeleteFunc      func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error
	EmployeeIDsFunc func(ctx context.Context, ownerID uuid.UUID) ([]string, error)

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
			Ctx context.Context
			M   domain.StaffMember
		}
		Update []struct {
			Ctx context.Context
			M   domain.StaffMember
		}
		Delete []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      uuid.UUID
		}
		EmployeeIDs []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
	}
	lockList        sync.RWMutex
	lockGet         sync.RWMutex
	lockCreate      sync.RWMutex
	lockUpdate      sync.RWMutex
	lockDelete      sync.RWMutex
	lockEmployeeIDs sync.RWMutex
}

func (mock *memberStoreMock) List(ctx context.Context, ownerID uuid.UUID) ([]domain.StaffMember, error) {
	if mock.ListFunc == nil {
		panic("memberStoreMock.ListFunc: method is nil but memberStore.List was just called")
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

func (mock *memberStoreMock) ListCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *memberStoreMock) Get(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (domain.StaffMember, error) {
	if mock.GetFunc == nil {
		panic("memberStoreMock.GetFunc: method is nil but memberStore.Get was just called")
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

func (mock *memberStoreMock) GetCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *memberStoreMock) Create(ctx context.Context, m domain.StaffMember) (domain.StaffMember, error) {
	if mock.CreateFunc == nil {
		panic("memberStoreMock.CreateFunc: method is nil but memberStore.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   domain.StaffMember
	}{Ctx: ctx, M: m}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *memberStoreMock) CreateCalls() []struct {
	Ctx context.Context
	M   domain.StaffMember
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *memberStoreMock) Update(ctx context.Context, m domain.StaffMember) (domain.StaffMember, error) {
	if mock.UpdateFunc == nil {
		panic("memberStoreMock.UpdateFunc: method is nil but memberStore.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   domain.StaffMember
	}{Ctx: ctx, M: m}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, m)
}

func (mock *memberStoreMock) UpdateCalls() []struct {
	Ctx context.Context
	M   domain.StaffMember
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *memberStoreMock) Delete(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("memberStoreMock.DeleteFunc: method is nil but memberStore.Delete was just called")
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

func (mock *memberStoreMock) DeleteCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *memberStoreMock) EmployeeIDs(ctx context.Context, ownerID uuid.UUID) ([]string, error) {
	if mock.EmployeeIDsFunc == nil {
		panic("memberStoreMock.EmployeeIDsFunc: method is nil but memberStore.EmployeeIDs was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockEmployeeIDs.Lock()
	mock.calls.EmployeeIDs = append(mock.calls.EmployeeIDs, callInfo)
	mock.lockEmployeeIDs.Unlock()
	return mock.EmployeeIDsFunc(ctx, ownerID)
}

func (mock *memberStoreMock) EmployeeIDsCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockEmployeeIDs.RLock()
	calls := mock.calls.EmployeeIDs
	mock.lockEmployeeIDs.RUnlock()
	return calls
}

var _ directoryCache = &directoryCacheMock{}

type directoryCacheMock struct {
	InvalidateFunc func(ctx context.Context, employeeID string)

	calls struct {
		Invalidate []struct {
			Ctx        context.Context
			EmployeeID string
		}
	}
	lockInvalidate sync.RWMutex
}

func (mock *directoryCacheMock) Invalidate(ctx context.Context, employeeID string) {
	if mock.InvalidateFunc == nil {
		panic("directoryCacheMock.InvalidateFunc: method is nil but directoryCache.Invalidate was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		EmployeeID string
	}{Ctx: ctx, EmployeeID: employeeID}
	mock.lockInvalidate.Lock()
	mock.calls.Invalidate = append(mock.calls.Invalidate, callInfo)
	mock.lockInvalidate.Unlock()
	mock.InvalidateFunc(ctx, employeeID)
}

func (mock *directoryCacheMock) InvalidateCalls() []struct {
	Ctx        context.Context
	EmployeeID string
} {
	mock.lockInvalidate.RLock()
	calls := mock.calls.Invalidate
	mock.lockInvalidate.RUnlock()
	return calls
}
