// Package attendance runs the clock-in/clock-out state machine for the
// public terminal and the owner dashboard.
package attendance

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/gateway"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/scope"
)

// recordStore persists attendance records. Writes after creation go through
// CompareAndSwap so that concurrent transitions of one record cannot both win.
type recordStore interface {
	Get(ctx context.Context, ownerID uuid.UUID, id string) (domain.AttendanceRecord, error)
	GetByIDs(ctx context.Context, ownerID uuid.UUID, ids []string) ([]domain.AttendanceRecord, error)
	ListRange(ctx context.Context, ownerID uuid.UUID, from, to domain.Date) ([]domain.AttendanceRecord, error)
	CreateIfAbsent(ctx context.Context, rec domain.AttendanceRecord) (domain.AttendanceRecord, error)
	CompareAndSwap(ctx context.Context, next domain.AttendanceRecord, expected domain.AttendanceStatus) (domain.AttendanceRecord, bool, error)
}

// staffReader resolves employees within one account.
type staffReader interface {
	FindByEmployeeID(ctx context.Context, ownerID uuid.UUID, employeeID string) (domain.StaffMember, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.StaffMember, error)
}

// employeeDirectory resolves an employee ID across every account. It returns
// domain.ErrConflict when the ID is not unique.
type employeeDirectory interface {
	FindGlobalByEmployeeID(ctx context.Context, employeeID string) (domain.StaffMember, error)
}

type reporter interface {
	Succeeded(ctx context.Context, sc scope.Scope, o gateway.Outcome)
	Failed(ctx context.Context, sc scope.Scope, op, title string, err error) error
}

// Options configure terminal lookups.
type Options struct {
	// GlobalLookup lets the public terminal resolve an employee ID without a
	// signed-in owner. When false, the terminal must be signed in and only
	// the owner's staff are found.
	GlobalLookup bool
	Location     *time.Location
}

// Service provides attendance operations.
type Service struct {
	records   recordStore
	staff     staffReader
	directory employeeDirectory
	report    reporter
	opts      Options
	now       func() time.Time
	log       *slog.Logger
}

// NewService creates a new attendance service.
func NewService(
	log *slog.Logger,
	records recordStore,
	staff staffReader,
	directory employeeDirectory,
	report reporter,
	opts Options,
) *Service {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &Service{
		records:   records,
		staff:     staff,
		directory: directory,
		report:    report,
		opts:      opts,
		now:       time.Now,
		log:       log.With("service", "attendance"),
	}
}

// LookupResult is a record together with the transition that produced it.
type LookupResult struct {
	Record     domain.AttendanceRecord
	Transition domain.Transition
}

// clock returns today's date and the wall-clock time in the business zone.
func (s *Service) clock() (domain.Date, domain.ClockTime) {
	local := s.now().In(s.opts.Location)
	return domain.DateOf(local), domain.ClockOf(local)
}

// placeholder is the not-started record stored on a member's first lookup
// of the day.
func (s *Service) placeholder(member domain.StaffMember, day domain.Date) domain.AttendanceRecord {
	rec := domain.NewAttendanceRecord(member, day)
	rec.UpdatedAt = s.now().UTC()
	return rec
}
