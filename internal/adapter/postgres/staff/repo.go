// Package staff implements the staff member repository using PostgreSQL.
package staff

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/AFTLlimited25/Platrr-Business/internal/adapter/postgres"
	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
)

const (
	table  = "staff_members"
	entity = "staff_member"
)

var columns = []string{
	"id", "owner_id", "employee_id", "name", "email", "phone", "role", "address", "status",
	"join_date", "created_at", "updated_at",
}

// Repo provides staff persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new staff repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns the owner's staff ordered by join date (earliest first).
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID) ([]domain.StaffMember, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("join_date ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list staff: %w", err)
	}

	return r.selectMembers(ctx, sql, args...)
}

// Get returns one staff member of the owner.
func (r *Repo) Get(ctx context.Context, ownerID, id uuid.UUID) (domain.StaffMember, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"owner_id": ownerID, "id": id}).
		ToSql()
	if err != nil {
		return domain.StaffMember{}, fmt.Errorf("build get staff: %w", err)
	}

	var row memberRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return domain.StaffMember{}, postgres.MapError(err, entity, id)
	}
	return row.toDomain(), nil
}

// FindByEmployeeID resolves an employee ID within one owner's staff.
func (r *Repo) FindByEmployeeID(ctx context.Context, ownerID uuid.UUID, employeeID string) (domain.StaffMember, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"owner_id": ownerID, "employee_id": employeeID}).
		ToSql()
	if err != nil {
		return domain.StaffMember{}, fmt.Errorf("build find staff: %w", err)
	}

	var row memberRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return domain.StaffMember{}, postgres.MapError(err, entity, employeeID)
	}
	return row.toDomain(), nil
}

// FindGlobalByEmployeeID resolves an employee ID across every account.
// Returns domain.ErrNotFound when no account has it and domain.ErrConflict
// when more than one does.
func (r *Repo) FindGlobalByEmployeeID(ctx context.Context, employeeID string) (domain.StaffMember, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"employee_id": employeeID}).
		Limit(2).
		ToSql()
	if err != nil {
		return domain.StaffMember{}, fmt.Errorf("build find staff globally: %w", err)
	}

	members, err := r.selectMembers(ctx, sql, args...)
	if err != nil {
		return domain.StaffMember{}, err
	}

	switch len(members) {
	case 0:
		return domain.StaffMember{}, fmt.Errorf("%s %s: %w", entity, employeeID, domain.ErrNotFound)
	case 1:
		return members[0], nil
	default:
		return domain.StaffMember{}, fmt.Errorf("%s %s: ambiguous across accounts: %w", entity, employeeID, domain.ErrConflict)
	}
}

// EmployeeIDs returns the employee IDs in use. With a nil owner it returns
// the IDs of every account.
func (r *Repo) EmployeeIDs(ctx context.Context, ownerID uuid.UUID) ([]string, error) {
	b := postgres.Builder().Select("employee_id").From(table)
	if ownerID != uuid.Nil {
		b = b.Where(squirrel.Eq{"owner_id": ownerID})
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build employee ids: %w", err)
	}

	var ids []string
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &ids, sql, args...); err != nil {
		return nil, fmt.Errorf("list employee ids: %w", err)
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new staff member.
func (r *Repo) Create(ctx context.Context, m domain.StaffMember) (domain.StaffMember, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "owner_id", "employee_id", "name", "email", "phone", "role", "address", "status",
			"join_date", "created_at", "updated_at").
		Values(m.ID, m.OwnerID, m.EmployeeID, m.Name, m.Email, m.Phone, string(m.Role), m.Address, string(m.Status),
			m.JoinDate.Time(), m.CreatedAt, m.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.StaffMember{}, fmt.Errorf("build create staff: %w", err)
	}

	var row memberRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return domain.StaffMember{}, postgres.MapError(err, entity, m.ID)
	}
	return row.toDomain(), nil
}

// Update replaces the editable fields. The employee ID is never rewritten.
func (r *Repo) Update(ctx context.Context, m domain.StaffMember) (domain.StaffMember, error) {
	sql, args, err := postgres.Builder().
		Update(table).
		SetMap(map[string]any{
			"name":       m.Name,
			"email":      m.Email,
			"phone":      m.Phone,
			"role":       string(m.Role),
			"address":    m.Address,
			"status":     string(m.Status),
			"join_date":  m.JoinDate.Time(),
			"updated_at": m.UpdatedAt,
		}).
		Where(squirrel.Eq{"owner_id": m.OwnerID, "id": m.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.StaffMember{}, fmt.Errorf("build update staff: %w", err)
	}

	var row memberRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return domain.StaffMember{}, postgres.MapError(err, entity, m.ID)
	}
	return row.toDomain(), nil
}

// Delete removes the staff member. Their attendance history is kept.
func (r *Repo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"owner_id": ownerID, "id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete staff: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type memberRow struct {
	ID         uuid.UUID `db:"id"`
	OwnerID    uuid.UUID `db:"owner_id"`
	EmployeeID string    `db:"employee_id"`
	Name       string    `db:"name"`
	Email      string    `db:"email"`
	Phone      string    `db:"phone"`
	Role       string    `db:"role"`
	Address    string    `db:"address"`
	Status     string    `db:"status"`
	JoinDate   time.Time `db:"join_date"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (row memberRow) toDomain() domain.StaffMember {
	return domain.StaffMember{
		ID:         row.ID,
		OwnerID:    row.OwnerID,
		EmployeeID: row.EmployeeID,
		Name:       row.Name,
		Email:      row.Email,
		Phone:      row.Phone,
		Role:       domain.StaffRole(row.Role),
		Address:    row.Address,
		Status:     domain.StaffStatus(row.Status),
		JoinDate:   domain.DateOf(row.JoinDate),
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

func (r *Repo) selectMembers(ctx context.Context, sql string, args ...any) ([]domain.StaffMember, error) {
	var rows []memberRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select staff: %w", err)
	}

	members := make([]domain.StaffMember, len(rows))
	for i, row := range rows {
		members[i] = row.toDomain()
	}
	return members, nil
}
