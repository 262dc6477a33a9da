package attendance

import (
	"context"
	"sync"

	"github.com/AFTLlimited25/Platrr-Business/internal/service/gateway"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/scope"
)

var _ reporter = &reporterMock{}

type reporterMock struct {
	SucceededFunc func(ctx context.Context, sc scope.Scope, o gateway.Outcome)
	FailedFunc    func(ctx context.Context, sc scope.Scope, op, title string, err error) error

	calls struct {
		Succeeded []struct {
			Ctx context.Context
			Sc  scope.Scope
			O   gateway.Outcome
		}
		Failed []struct {
			Ctx   context.Context
			Sc    scope.Scope
			Op    string
			Title string
			Err   error
		}
	}
	lockSucceeded sync.RWMutex
	lockFailed    sync.RWMutex
}

func (mock *reporterMock) Succeeded(ctx context.Context, sc scope.Scope, o gateway.Outcome) {
	if mock.SucceededFunc == nil {
		panic("reporterMock.SucceededFunc: method is nil but reporter.Succeeded was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Sc  scope.Scope
		O   gateway.Outcome
	}{Ctx: ctx, Sc: sc, O: o}
	mock.lockSucceeded.Lock()
	mock.calls.Succeeded = append(mock.calls.Succeeded, callInfo)
	mock.lockSucceeded.Unlock()
	mock.SucceededFunc(ctx, sc, o)
}

func (mock *reporterMock) SucceededCalls() []struct {
	Ctx context.Context
	Sc  scope.Scope
	O   gateway.Outcome
} {
	mock.lockSucceeded.RLock()
	calls := mock.calls.Succeeded
	mock.lockSucceeded.RUnlock()
	return calls
}

func (mock *reporterMock) Failed(ctx context.Context, sc scope.Scope, op, title string, err error) error {
	if mock.FailedFunc == nil {
		panic("reporterMock.FailedFunc: method is nil but reporter.Failed was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Sc    scope.Scope
		Op    string
		Title string
		Err   error
	}{Ctx: ctx, Sc: sc, Op: op, Title: title, Err: err}
	mock.lockFailed.Lock()
	mock.calls.Failed = append(mock.calls.Failed, callInfo)
	mock.lockFailed.Unlock()
	return mock.FailedFunc(ctx, sc, op, title, err)
}

func (mock *reporterMock) FailedCalls() []struct {
	Ctx   context.Context
	Sc    scope.Scope
	Op    string
	Title string
	Err   error
} {
	mock.lockFailed.RLock()
	calls := mock.calls.Failed
	mock.lockFailed.RUnlock()
	return calls
}
