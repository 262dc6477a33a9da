// Package schedule manages the orders, shifts and activity collections shown
// on the owner dashboard. All operations need a signed-in owner.
package schedule

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/gateway"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/scope"
)

type orderRepo interface {
	Create(ctx context.Context, o domain.Order) (domain.Order, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.Order, error)
}

type shiftRepo interface {
	Create(ctx context.Context, s domain.Shift) (domain.Shift, error)
	List(ctx context.Context, ownerID uuid.UUID, from domain.Date, limit int) ([]domain.Shift, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type activityReader interface {
	ListRecent(ctx context.Context, ownerID uuid.UUID, limit int) ([]domain.Activity, error)
}

type reporter interface {
	Succeeded(ctx context.Context, sc scope.Scope, o gateway.Outcome)
	Failed(ctx context.Context, sc scope.Scope, op, title string, err error) error
}

const (
	DefaultActivityLimit = 20
	MaxActivityLimit     = 50
)

// Service provides order, shift and activity operations.
type Service struct {
	orders      orderRepo
	shifts      shiftRepo
	activity    activityReader
	orderReport reporter
	shiftReport reporter
	loc         *time.Location
	now         func() time.Time
	log         *slog.Logger
}

// NewService creates a new schedule service.
func NewService(
	log *slog.Logger,
	orders orderRepo,
	shifts shiftRepo,
	activity activityReader,
	orderReport reporter,
	shiftReport reporter,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		orders:      orders,
		shifts:      shifts,
		activity:    activity,
		orderReport: orderReport,
		shiftReport: shiftReport,
		loc:         loc,
		now:         time.Now,
		log:         log.With("service", "schedule"),
	}
}

// ownerScope returns the signed-in owner's scope. Guests have no schedule.
func ownerScope(ctx context.Context) (scope.Scope, error) {
	sc, err := scope.FromCtx(ctx)
	if err != nil {
		return scope.Scope{}, err
	}
	if !sc.Remote {
		return scope.Scope{}, domain.ErrUnauthorized
	}
	return sc, nil
}
