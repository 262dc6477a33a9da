// Package shift implements the shift schedule repository using PostgreSQL.
package shift

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

const table = "shifts"

var columns = []string{"id", "owner_id", "staff_name", "role", "date", "start_time", "end_time"}

// Repo provides shift persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new shift repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a shift.
func (r *Repo) Create(ctx context.Context, s domain.Shift) (domain.Shift, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(s.ID, s.OwnerID, s.StaffName, string(s.Role), s.Date.Time(), s.Start.String(), s.End.String()).
		ToSql()
	if err != nil {
		return domain.Shift{}, fmt.Errorf("build create shift: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return domain.Shift{}, postgres.MapError(err, "shift", s.ID)
	}
	return s, nil
}

// List returns the owner's shifts from the given day on (all when from is
// zero), earliest first. A positive limit caps the result.
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID, from domain.Date, limit int) ([]domain.Shift, error) {
	b := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"owner_id": ownerID})
	if !from.IsZero() {
		b = b.Where(squirrel.GtOrEq{"date": from.Time()})
	}
	b = b.OrderBy("date ASC", "start_time ASC")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list shifts: %w", err)
	}

	var rows []shiftRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}

	out := make([]domain.Shift, 0, len(rows))
	for _, row := range rows {
		s, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Delete removes a shift. Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"owner_id": ownerID, "id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete shift: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "shift", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("shift %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

type shiftRow struct {
	ID        uuid.UUID `db:"id"`
	OwnerID   uuid.UUID `db:"owner_id"`
	StaffName string    `db:"staff_name"`
	Role      string    `db:"role"`
	Date      time.Time `db:"date"`
	StartTime string    `db:"start_time"`
	EndTime   string    `db:"end_time"`
}

func (row shiftRow) toDomain() (domain.Shift, error) {
	start, err := domain.ParseClockTime(row.StartTime)
	if err != nil {
		return domain.Shift{}, fmt.Errorf("shift %s: start_time: %w", row.ID, err)
	}
	end, err := domain.ParseClockTime(row.EndTime)
	if err != nil {
		return domain.Shift{}, fmt.Errorf("shift %s: end_time: %w", row.ID, err)
	}
	return domain.Shift{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		StaffName: row.StaffName,
		Role:      domain.StaffRole(row.Role),
		Date:      domain.DateOf(row.Date),
		Start:     start,
		End:       end,
	}, nil
}
