package staff

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/gateway"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/scope"
)

// memberStore is implemented by both the PostgreSQL repository and the
// in-memory guest store.
type memberStore interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.StaffMember, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (domain.StaffMember, error)
	Create(ctx context.Context, m domain.StaffMember) (domain.StaffMember, error)
	Update(ctx context.Context, m domain.StaffMember) (domain.StaffMember, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	// EmployeeIDs lists the IDs in use by ownerID; uuid.Nil lists every
	// account's IDs.
	EmployeeIDs(ctx context.Context, ownerID uuid.UUID) ([]string, error)
}

// directoryCache drops cached employee lookups.
type directoryCache interface {
	Invalidate(ctx context.Context, employeeID string)
}

type reporter interface {
	Succeeded(ctx context.Context, sc scope.Scope, o gateway.Outcome)
	Failed(ctx context.Context, sc scope.Scope, op, title string, err error) error
}

// Options tune employee ID generation.
type Options struct {
	// EmployeeIDPrefix is prepended to generated employee IDs.
	EmployeeIDPrefix string
	// GlobalEmployeeIDs makes new remote IDs unique across all accounts,
	// which the attendance terminal needs for an unscoped lookup.
	GlobalEmployeeIDs bool
	Location          *time.Location
}

// Service provides staff management operations.
type Service struct {
	remote    memberStore
	local     memberStore
	report    reporter
	directory directoryCache
	opts      Options
	now       func() time.Time
	log       *slog.Logger
}

// NewService creates a new staff service. directory may be nil.
func NewService(
	log *slog.Logger,
	remote memberStore,
	local memberStore,
	report reporter,
	directory directoryCache,
	opts Options,
) *Service {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &Service{
		remote:    remote,
		local:     local,
		report:    report,
		directory: directory,
		opts:      opts,
		now:       time.Now,
		log:       log.With("service", "staff"),
	}
}

func (s *Service) store(sc scope.Scope) memberStore {
	if sc.Remote {
		return s.remote
	}
	return s.local
}

func (s *Service) today() domain.Date {
	return domain.DateOf(s.now().In(s.opts.Location))
}

func (s *Service) invalidate(ctx context.Context, sc scope.Scope, employeeID string) {
	if s.directory != nil && sc.Remote {
		s.directory.Invalidate(ctx, employeeID)
	}
}
