package attendance

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
)

var _ staffReader = &staffReaderMock{}

type staffReaderMock struct {
	FindByEmployeeIDFunc func(ctx context.Context, ownerID uuid.UUID, employeeID string) (domain.StaffMember, error)
	ListFunc             func(ctx context.Context, ownerID uuid.UUID) ([]domain.StaffMember, error)

	calls struct {
		FindByEmployeeID []struct {
			Ctx        context.Context
			OwnerID    uuid.UUID
			EmployeeID string
		}
		List []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
	}
	lockFindByEmployeeID sync.RWMutex
	lockList             sync.RWMutex
}

func (mock *staffReaderMock) FindByEmployeeID(ctx context.Context, ownerID uuid.UUID, employeeID string) (domain.StaffMember, error) {
	if mock.FindByEmployeeIDFunc == nil {
		panic("staffReaderMock.FindByEmployeeIDFunc: method is nil but staffReader.FindByEmployeeID was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		OwnerID    uuid.UUID
		EmployeeID string
	}{Ctx: ctx, OwnerID: ownerID, EmployeeID: employeeID}
	mock.lockFindByEmployeeID.Lock()
	mock.calls.FindByEmployeeID = append(mock.calls.FindByEmployeeID, callInfo)
	mock.lockFindByEmployeeID.Unlock()
	return mock.FindByEmployeeIDFunc(ctx, ownerID, employeeID)
}

func (mock *staffReaderMock) FindByEmployeeIDCalls() []struct {
	Ctx        context.Context
	OwnerID    uuid.UUID
	EmployeeID string
} {
	mock.lockFindByEmployeeID.RLock()
	calls := mock.calls.FindByEmployeeID
	mock.lockFindByEmployeeID.RUnlock()
	return calls
}

func (mock *staffReaderMock) List(ctx context.Context, ownerID uuid.UUID) ([]domain.StaffMember, error) {
	if mock.ListFunc == nil {
		panic("staffReaderMock.ListFunc: method is nil but staffReader.List was just called")
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

func (mock *staffReaderMock) ListCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ employeeDirectory = &employeeDirectoryMock{}

type employeeDirectoryMock struct {
	FindGlobalByEmployeeIDFunc func(ctx context.Context, employeeID string) (domain.StaffMember, error)

	calls struct {
		FindGlobalByEmployeeID []struct {
			Ctx        context.Context
			EmployeeID string
		}
	}
	lockFindGlobalByEmployeeID sync.RWMutex
}

func (mock *employeeDirectoryMock) FindGlobalByEmployeeID(ctx context.Context, employeeID string) (domain.StaffMember, error) {
	if mock.FindGlobalByEmployeeIDFunc == nil {
		panic("employeeDirectoryMock.FindGlobalByEmployeeIDFunc: method is nil but employeeDirectory.FindGlobalByEmployeeID was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		EmployeeID string
	}{Ctx: ctx, EmployeeID: employeeID}
	mock.lockFindGlobalByEmployeeID.Lock()
	mock.calls.FindGlobalByEmployeeID = append(mock.calls.FindGlobalByEmployeeID, callInfo)
	mock.lockFindGlobalByEmployeeID.Unlock()
	return mock.FindGlobalByEmployeeIDFunc(ctx, employeeID)
}

func (mock *employeeDirectoryMock) FindGlobalByEmployeeIDCalls() []struct {
	Ctx        context.Context
	EmployeeID string
} {
	mock.lockFindGlobalByEmployeeID.RLock()
	calls := mock.calls.FindGlobalByEmployeeID
	mock.lockFindGlobalByEmployeeID.RUnlock()
	return calls
}
