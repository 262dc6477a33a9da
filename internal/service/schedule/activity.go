package schedule

import (
	"context"
	"fmt"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
)

// ListActivity returns the owner's most recent activity, newest first.
// limit <= 0 means DefaultActivityLimit; it is capped at MaxActivityLimit.
func (s *Service) ListActivity(ctx context.Context, limit int) ([]domain.Activity, error) {
	sc, err := ownerScope(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	limit = min(limit, MaxActivityLimit)

	acts, err := s.activity.ListRecent(ctx, sc.Key, limit)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	return acts, nil
}
