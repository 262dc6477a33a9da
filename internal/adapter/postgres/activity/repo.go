// Package activity implements the activity feed repository using PostgreSQL.
// It provides append-only operations for activity entries.
package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/AFTLlimited25/Platrr-Business/internal/adapter/postgres"
	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
)

const table = "activities"

// Repo provides activity persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new activity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Log appends an activity entry.
func (r *Repo) Log(ctx context.Context, a domain.Activity) error {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "owner_id", "kind", "message", "entity_id", "occurred_at").
		Values(a.ID, a.OwnerID, string(a.Kind), a.Message, a.EntityID, a.OccurredAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build log activity: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "activity", a.ID)
	}
	return nil
}

// DeleteBefore purges entries older than cutoff across every account.
func (r *Repo) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Lt{"occurred_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build purge activities: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("purge activities: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListRecent returns the owner's latest entries, newest first.
func (r *Repo) ListRecent(ctx context.Context, ownerID uuid.UUID, limit int) ([]domain.Activity, error) {
	sql, args, err := postgres.Builder().
		Select("id", "owner_id", "kind", "message", "entity_id", "occurred_at").
		From(table).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("occurred_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list activities: %w", err)
	}

	var rows []activityRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	out := make([]domain.Activity, len(rows))
	for i, row := range rows {
		out[i] = domain.Activity{
			ID:         row.ID,
			OwnerID:    row.OwnerID,
			Kind:       domain.ActivityKind(row.Kind),
			Message:    row.Message,
			EntityID:   row.EntityID,
			OccurredAt: row.OccurredAt,
		}
	}
	return out, nil
}

type activityRow struct {
	ID         uuid.UUID `db:"id"`
	OwnerID    uuid.UUID `db:"owner_id"`
	Kind       string    `db:"kind"`
	Message    string    `db:"message"`
	EntityID   string    `db:"entity_id"`
	OccurredAt time.Time `db:"occurred_at"`
}
