package staff

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/scope"
)

// ListMembers returns the caller's staff in join order, filtered by input.
func (s *Service) ListMembers(ctx context.Context, input ListMembersInput) ([]domain.StaffMember, error) {
	sc, err := scope.FromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	members, err := s.store(sc).List(ctx, sc.Key)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}

	return domain.FilterStaff(members, domain.StaffFilter{
		Search: input.Search,
		Role:   input.Role,
		Status: input.Status,
	}), nil
}

// GetMember returns one staff member.
func (s *Service) GetMember(ctx context.Context, id uuid.UUID) (domain.StaffMember, error) {
	sc, err := scope.FromCtx(ctx)
	if err != nil {
		return domain.StaffMember{}, err
	}
	if id == uuid.Nil {
		return domain.StaffMember{}, domain.NewValidationError("id", "required")
	}

	m, err := s.store(sc).Get(ctx, sc.Key, id)
	if err != nil {
		return domain.StaffMember{}, fmt.Errorf("get staff: %w", err)
	}
	return m, nil
}
