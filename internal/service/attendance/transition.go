package attendance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
	"github.com/AFTLlimited25/Platrr-Business/internal/metrics"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/gateway"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/scope"
)

// commit persists next only if the stored record is still in prev's state.
// Losing the race is not an error: the winner's record is returned with
// TransitionNone. A failed write is never reported as the new state.
func (s *Service) commit(
	ctx context.Context,
	sc scope.Scope,
	prev, next domain.AttendanceRecord,
	tr domain.Transition,
) (LookupResult, error) {
	op := "attendance " + string(tr)
	failTitle := fmt.Sprintf("Failed to save %s to database.", phrase(tr))

	next.UpdatedAt = s.now().UTC()
	saved, swapped, err := s.records.CompareAndSwap(ctx, next, prev.Status)
	if err != nil {
		return LookupResult{}, s.report.Failed(ctx, sc, op, failTitle, err)
	}

	if !swapped {
		current, err := s.records.Get(ctx, prev.OwnerID, prev.ID)
		if err != nil {
			return LookupResult{}, s.report.Failed(ctx, sc, op, failTitle, err)
		}
		s.log.InfoContext(ctx, "attendance transition lost race",
			slog.String("record_id", prev.ID),
			slog.String("status", string(current.Status)),
		)
		return LookupResult{Record: current, Transition: domain.TransitionNone}, nil
	}

	metrics.AttendanceTransitions.WithLabelValues(string(tr)).Inc()

	at := stampOf(saved, tr)
	s.report.Succeeded(ctx, sc, gateway.Outcome{
		Title:    fmt.Sprintf("You %s at %s", pastTense(tr), at),
		Detail:   saved.Name,
		EntityID: saved.ID,
		Activity: activityLine(saved, tr, at),
	})

	s.log.InfoContext(ctx, "attendance transition",
		slog.String("record_id", saved.ID),
		slog.String("transition", string(tr)),
		slog.String("at", at),
	)

	return LookupResult{Record: saved, Transition: tr}, nil
}

func stampOf(r domain.AttendanceRecord, tr domain.Transition) string {
	if tr == domain.TransitionClockOut && r.ClockOut != nil {
		return r.ClockOut.String()
	}
	if r.ClockIn != nil {
		return r.ClockIn.String()
	}
	return ""
}

func activityLine(r domain.AttendanceRecord, tr domain.Transition, at string) string {
	if tr == domain.TransitionClockOut && r.HoursWorked != nil {
		return fmt.Sprintf("%s clocked out at %s (%s)", r.Name, at, *r.HoursWorked)
	}
	return fmt.Sprintf("%s %s at %s", r.Name, pastTense(tr), at)
}

func pastTense(tr domain.Transition) string {
	if tr == domain.TransitionClockOut {
		return "clocked out"
	}
	return "clocked in"
}

func phrase(tr domain.Transition) string {
	if tr == domain.TransitionClockOut {
		return "clock out"
	}
	return "clock in"
}
