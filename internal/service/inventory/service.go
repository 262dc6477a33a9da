package inventory

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/gateway"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/scope"
)

// itemStore is implemented by both the PostgreSQL repository (signed-in
// owners) and the in-memory guest store.
type itemStore interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.InventoryItem, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (domain.InventoryItem, error)
	Create(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error)
	Update(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error)
	AdjustStock(ctx context.Context, ownerID, id uuid.UUID, delta int, today domain.Date) (domain.InventoryItem, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type reporter interface {
	Succeeded(ctx context.Context, sc scope.Scope, o gateway.Outcome)
	Failed(ctx context.Context, sc scope.Scope, op, title string, err error) error
}

// Service provides inventory management operations.
type Service struct {
	remote itemStore
	local  itemStore
	report reporter
	loc    *time.Location
	now    func() time.Time
	log    *slog.Logger
}

// NewService creates a new inventory service. loc is the business time zone
// that decides what "today" is.
func NewService(
	log *slog.Logger,
	remote itemStore,
	local itemStore,
	report reporter,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		remote: remote,
		local:  local,
		report: report,
		loc:    loc,
		now:    time.Now,
		log:    log.With("service", "inventory"),
	}
}

func (s *Service) store(sc scope.Scope) itemStore {
	if sc.Remote {
		return s.remote
	}
	return s.local
}

func (s *Service) today() domain.Date {
	return domain.DateOf(s.now().In(s.loc))
}
