package attendance

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/scope"
	"github.com/AFTLlimited25/Platrr-Business/pkg/ctxutil"
)

// Load fetches or creates today's record for one of the owner's employees
// without changing its state.
func (s *Service) Load(ctx context.Context, rawEmployeeID string) (domain.AttendanceRecord, error) {
	_, rec, err := s.todayRecord(ctx, "attendance load", rawEmployeeID)
	if err != nil {
		return domain.AttendanceRecord{}, err
	}
	return rec, nil
}

// ClockIn clocks one of the owner's employees in. It fails with
// domain.ErrInvalidTransition unless the record is not-started.
func (s *Service) ClockIn(ctx context.Context, rawEmployeeID string) (LookupResult, error) {
	return s.step(ctx, rawEmployeeID, domain.TransitionClockIn)
}

// ClockOut clocks one of the owner's employees out. It fails with
// domain.ErrInvalidTransition unless the record is clocked-in.
func (s *Service) ClockOut(ctx context.Context, rawEmployeeID string) (LookupResult, error) {
	return s.step(ctx, rawEmployeeID, domain.TransitionClockOut)
}

func (s *Service) step(ctx context.Context, rawEmployeeID string, tr domain.Transition) (LookupResult, error) {
	op := "attendance " + string(tr)

	owner, rec, err := s.todayRecord(ctx, op, rawEmployeeID)
	if err != nil {
		return LookupResult{}, err
	}
	sc := scope.Scope{Key: owner, Remote: true}

	_, at := s.clock()
	var next domain.AttendanceRecord
	if tr == domain.TransitionClockOut {
		next, err = rec.ClockOutAt(at)
	} else {
		next, err = rec.ClockInAt(at)
	}
	if err != nil {
		return LookupResult{}, s.report.Failed(ctx, sc, op, "Invalid attendance action", err)
	}

	return s.commit(ctx, sc, rec, next, tr)
}

// todayRecord resolves the employee within the signed-in owner's staff and
// returns today's record, creating it if needed.
func (s *Service) todayRecord(ctx context.Context, op, rawEmployeeID string) (uuid.UUID, domain.AttendanceRecord, error) {
	owner, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.AttendanceRecord{}, s.report.Failed(ctx, scope.Scope{}, op, "Not authenticated", domain.ErrUnauthorized)
	}
	sc := scope.Scope{Key: owner, Remote: true}

	employeeID, err := normalizeEmployeeID(rawEmployeeID)
	if err != nil {
		return uuid.Nil, domain.AttendanceRecord{}, s.report.Failed(ctx, sc, op, "Invalid ID", err)
	}

	member, err := s.staff.FindByEmployeeID(ctx, owner, employeeID)
	if err != nil {
		title := "Failed to lookup employee."
		if errors.Is(err, domain.ErrNotFound) {
			title = "Please check your employee ID and try again."
		}
		return uuid.Nil, domain.AttendanceRecord{}, s.report.Failed(ctx, sc, op, title, err)
	}

	today, _ := s.clock()
	rec, err := s.records.CreateIfAbsent(ctx, s.placeholder(member, today))
	if err != nil {
		return uuid.Nil, domain.AttendanceRecord{}, s.report.Failed(ctx, sc, op, "Failed to lookup employee.", err)
	}
	return owner, rec, nil
}
