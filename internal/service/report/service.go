// Package report builds owner reports: inventory valuation and attendance
// hours, as JSON-ready structs or a PDF document.
package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
	"github.com/AFTLlimited25/Platrr-Business/pkg/ctxutil"
)

type inventoryLister interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.InventoryItem, error)
}

type attendanceRanger interface {
	ListRange(ctx context.Context, ownerID uuid.UUID, from, to domain.Date) ([]domain.AttendanceRecord, error)
}

type accountReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Account, error)
}

// MaxRangeDays bounds an attendance report.
const MaxRangeDays = 366

// Service builds reports for the signed-in owner.
type Service struct {
	inventory  inventoryLister
	attendance attendanceRanger
	accounts   accountReader
	loc        *time.Location
	now        func() time.Time
	log        *slog.Logger
}

// NewService creates a new report service.
func NewService(
	log *slog.Logger,
	inventory inventoryLister,
	attendance attendanceRanger,
	accounts accountReader,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		inventory:  inventory,
		attendance: attendance,
		accounts:   accounts,
		loc:        loc,
		now:        time.Now,
		log:        log.With("service", "report"),
	}
}

func ownerFromCtx(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, nil
}

func (s *Service) today() domain.Date {
	return domain.Today(s.now(), s.loc)
}
