package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/scope"
	"github.com/AFTLlimited25/Platrr-Business/pkg/ctxutil"
)

// Lookup is the terminal flow: resolve the employee, fetch or create today's
// record and advance it one step. A clocked-out record is returned
// unchanged with TransitionNone.
func (s *Service) Lookup(ctx context.Context, rawEmployeeID string) (LookupResult, error) {
	const op = "attendance lookup"

	employeeID, err := normalizeEmployeeID(rawEmployeeID)
	if err != nil {
		return LookupResult{}, s.report.Failed(ctx, terminalScope(ctx), op, "Invalid ID", err)
	}

	member, err := s.resolveForTerminal(ctx, employeeID)
	if err != nil {
		title := "Failed to lookup employee."
		if errors.Is(err, domain.ErrNotFound) {
			title = "Please check your employee ID and try again."
		}
		return LookupResult{}, s.report.Failed(ctx, terminalScope(ctx), op, title, err)
	}

	sc := scope.Scope{Key: member.OwnerID, Remote: true}
	today, at := s.clock()

	rec, err := s.records.CreateIfAbsent(ctx, s.placeholder(member, today))
	if err != nil {
		return LookupResult{}, s.report.Failed(ctx, sc, op, "Failed to lookup employee.", err)
	}

	next, tr := rec.Toggle(at)
	if tr == domain.TransitionNone {
		s.log.InfoContext(ctx, "shift already completed",
			slog.String("employee_id", employeeID),
			slog.String("record_id", rec.ID),
		)
		return LookupResult{Record: rec, Transition: tr}, nil
	}

	return s.commit(ctx, sc, rec, next, tr)
}

// resolveForTerminal finds the employee across accounts when global lookup
// is enabled, otherwise within the signed-in owner's staff.
func (s *Service) resolveForTerminal(ctx context.Context, employeeID string) (domain.StaffMember, error) {
	if s.opts.GlobalLookup {
		m, err := s.directory.FindGlobalByEmployeeID(ctx, employeeID)
		if err != nil {
			return domain.StaffMember{}, fmt.Errorf("find employee %s: %w", employeeID, err)
		}
		return m, nil
	}

	owner, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.StaffMember{}, domain.ErrUnauthorized
	}
	m, err := s.staff.FindByEmployeeID(ctx, owner, employeeID)
	if err != nil {
		return domain.StaffMember{}, fmt.Errorf("find employee %s: %w", employeeID, err)
	}
	return m, nil
}

// terminalScope addresses failure notices before the owning account is known.
func terminalScope(ctx context.Context) scope.Scope {
	if owner, ok := ctxutil.UserIDFromCtx(ctx); ok {
		return scope.Scope{Key: owner, Remote: true}
	}
	return scope.Scope{}
}
