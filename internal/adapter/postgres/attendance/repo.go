// Package attendance implements the attendance record repository using PostgreSQL.
// Records are keyed by (owner_id, id) where id is "<employeeId>_<date>".
// Status changes go through a compare-and-swap so concurrent terminals
// cannot both apply a transition.
package attendance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/AFTLlimited25/Platrr-Business/internal/adapter/postgres"
	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
)

const (
	table  = "attendance_records"
	entity = "attendance_record"
)

var columns = []string{
	"owner_id", "id", "employee_id", "name", "date", "clock_in", "clock_out", "status",
	"hours_worked", "updated_at",
}

// Repo provides attendance persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new attendance repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns a record by key.
func (r *Repo) Get(ctx context.Context, ownerID uuid.UUID, id string) (domain.AttendanceRecord, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"owner_id": ownerID, "id": id}).
		ToSql()
	if err != nil {
		return domain.AttendanceRecord{}, fmt.Errorf("build get attendance: %w", err)
	}

	var row recordRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return domain.AttendanceRecord{}, postgres.MapError(err, entity, id)
	}
	return row.toDomain()
}

// GetByIDs returns the records that exist among ids, in no particular order.
func (r *Repo) GetByIDs(ctx context.Context, ownerID uuid.UUID, ids []string) ([]domain.AttendanceRecord, error) {
	if len(ids) == 0 {
		return []domain.AttendanceRecord{}, nil
	}

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"owner_id": ownerID}).
		Where("id = ANY(?)", ids).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get attendance batch: %w", err)
	}

	return r.selectRecords(ctx, sql, args...)
}

// ListRange returns the owner's records dated within [from, to], newest day
// first and by employee ID within a day. A zero bound is open.
func (r *Repo) ListRange(ctx context.Context, ownerID uuid.UUID, from, to domain.Date) ([]domain.AttendanceRecord, error) {
	b := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"owner_id": ownerID})
	if !from.IsZero() {
		b = b.Where(squirrel.GtOrEq{"date": from.Time()})
	}
	if !to.IsZero() {
		b = b.Where(squirrel.LtOrEq{"date": to.Time()})
	}

	sql, args, err := b.OrderBy("date DESC", "employee_id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list attendance: %w", err)
	}

	return r.selectRecords(ctx, sql, args...)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// CreateIfAbsent inserts rec unless a record with its key already exists,
// then returns whichever record is stored.
func (r *Repo) CreateIfAbsent(ctx context.Context, rec domain.AttendanceRecord) (domain.AttendanceRecord, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(rec.OwnerID, rec.ID, rec.EmployeeID, rec.Name, rec.Date.Time(),
			clockArg(rec.ClockIn), clockArg(rec.ClockOut), string(rec.Status), rec.HoursWorked, rec.UpdatedAt).
		Suffix("ON CONFLICT (owner_id, id) DO NOTHING").
		ToSql()
	if err != nil {
		return domain.AttendanceRecord{}, fmt.Errorf("build create attendance: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return domain.AttendanceRecord{}, postgres.MapError(err, entity, rec.ID)
	}

	return r.Get(ctx, rec.OwnerID, rec.ID)
}

// CompareAndSwap writes next only if the stored status still equals expected.
// It reports false, with no error, when another writer got there first.
func (r *Repo) CompareAndSwap(ctx context.Context, next domain.AttendanceRecord, expected domain.AttendanceStatus) (domain.AttendanceRecord, bool, error) {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("clock_in", clockArg(next.ClockIn)).
		Set("clock_out", clockArg(next.ClockOut)).
		Set("status", string(next.Status)).
		Set("hours_worked", next.HoursWorked).
		Set("updated_at", next.UpdatedAt).
		Where(squirrel.Eq{"owner_id": next.OwnerID, "id": next.ID, "status": string(expected)}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.AttendanceRecord{}, false, fmt.Errorf("build swap attendance: %w", err)
	}

	var row recordRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.AttendanceRecord{}, false, nil
		}
		return domain.AttendanceRecord{}, false, postgres.MapError(err, entity, next.ID)
	}

	rec, err := row.toDomain()
	if err != nil {
		return domain.AttendanceRecord{}, false, err
	}
	return rec, true, nil
}

// DeleteBefore purges records dated before cutoff across every account.
func (r *Repo) DeleteBefore(ctx context.Context, cutoff domain.Date) (int64, error) {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Lt{"date": cutoff.Time()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build purge attendance: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("purge attendance: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type recordRow struct {
	OwnerID     uuid.UUID `db:"owner_id"`
	ID          string    `db:"id"`
	EmployeeID  string    `db:"employee_id"`
	Name        string    `db:"name"`
	Date        time.Time `db:"date"`
	ClockIn     *string   `db:"clock_in"`
	ClockOut    *string   `db:"clock_out"`
	Status      string    `db:"status"`
	HoursWorked *string   `db:"hours_worked"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (row recordRow) toDomain() (domain.AttendanceRecord, error) {
	in, err := parseClock(row.ClockIn)
	if err != nil {
		return domain.AttendanceRecord{}, fmt.Errorf("%s %s: clock_in: %w", entity, row.ID, err)
	}
	out, err := parseClock(row.ClockOut)
	if err != nil {
		return domain.AttendanceRecord{}, fmt.Errorf("%s %s: clock_out: %w", entity, row.ID, err)
	}

	return domain.AttendanceRecord{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		EmployeeID:  row.EmployeeID,
		Name:        row.Name,
		Date:        domain.DateOf(row.Date),
		ClockIn:     in,
		ClockOut:    out,
		Status:      domain.AttendanceStatus(row.Status),
		HoursWorked: row.HoursWorked,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}

func (r *Repo) selectRecords(ctx context.Context, sql string, args ...any) ([]domain.AttendanceRecord, error) {
	var rows []recordRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select attendance: %w", err)
	}

	records := make([]domain.AttendanceRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseClock(s *string) (*domain.ClockTime, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	c, err := domain.ParseClockTime(*s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func clockArg(c *domain.ClockTime) *string {
	if c == nil {
		return nil
	}
	s := c.String()
	return &s
}
