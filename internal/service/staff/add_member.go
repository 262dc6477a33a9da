package staff

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/gateway"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/scope"
)

const maxCreateAttempts = 3

// AddMember stores a new staff member with a freshly generated employee ID.
func (s *Service) AddMember(ctx context.Context, input AddMemberInput) (domain.StaffMember, error) {
	const op = "add staff"

	sc, err := scope.FromCtx(ctx)
	if err != nil {
		return domain.StaffMember{}, s.report.Failed(ctx, sc, op, "Save failed", err)
	}
	if err := input.Validate(); err != nil {
		return domain.StaffMember{}, s.report.Failed(ctx, sc, op, "Missing fields", err)
	}

	store := s.store(sc)

	idScope := sc.Key
	if sc.Remote && s.opts.GlobalEmployeeIDs {
		idScope = uuid.Nil
	}
	existing, err := store.EmployeeIDs(ctx, idScope)
	if err != nil {
		return domain.StaffMember{}, s.report.Failed(ctx, sc, op, "Save failed", err)
	}

	now := s.now().UTC()
	member := input.apply(domain.StaffMember{
		ID:        uuid.New(),
		OwnerID:   sc.Key,
		JoinDate:  s.today(),
		CreatedAt: now,
		UpdatedAt: now,
	})

	// Employee IDs are unique across accounts in the store, so an ID taken
	// by a concurrent add elsewhere is regenerated.
	gen := domain.NewEmployeeIDGenerator(s.opts.EmployeeIDPrefix, existing)
	var created domain.StaffMember
	for attempt := 1; ; attempt++ {
		member.EmployeeID = gen.Next()
		created, err = store.Create(ctx, member)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrAlreadyExists) || attempt == maxCreateAttempts {
			return domain.StaffMember{}, s.report.Failed(ctx, sc, op, "Save failed", err)
		}
		s.log.WarnContext(ctx, "employee id taken, regenerating",
			slog.String("employee_id", member.EmployeeID),
			slog.Int("attempt", attempt),
		)
	}

	s.report.Succeeded(ctx, sc, gateway.Outcome{
		Title:    "Staff added",
		Detail:   fmt.Sprintf("%s added with Employee ID %s", created.Name, created.EmployeeID),
		EntityID: created.ID.String(),
		Activity: fmt.Sprintf("New staff member %s joined as %s", created.Name, created.Role),
	})

	s.log.InfoContext(ctx, "staff member added",
		slog.String("mode", sc.Mode()),
		slog.String("staff_id", created.ID.String()),
		slog.String("employee_id", created.EmployeeID),
	)

	return created, nil
}
