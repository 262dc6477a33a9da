// Package order implements the order repository using PostgreSQL.
package order

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	postgres "github.com/AFTLlimited25/Platrr-Business/internal/adapter/postgres"
	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
)

const table = "orders"

// Repo provides order persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new order repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts an order.
func (r *Repo) Create(ctx context.Context, o domain.Order) (domain.Order, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "owner_id", "total_amount", "placed_at", "note").
		Values(o.ID, o.OwnerID, o.TotalAmount.String(), o.PlacedAt, o.Note).
		ToSql()
	if err != nil {
		return domain.Order{}, fmt.Errorf("build create order: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return domain.Order{}, postgres.MapError(err, "order", o.ID)
	}
	return o, nil
}

// List returns the owner's orders, newest first.
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID) ([]domain.Order, error) {
	sql, args, err := postgres.Builder().
		Select("id", "owner_id", "total_amount::text AS total_amount", "placed_at", "note").
		From(table).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("placed_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list orders: %w", err)
	}

	var rows []orderRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	out := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		amount, err := decimal.NewFromString(row.TotalAmount)
		if err != nil {
			return nil, fmt.Errorf("order %s: parse total_amount: %w", row.ID, err)
		}
		out = append(out, domain.Order{
			ID:          row.ID,
			OwnerID:     row.OwnerID,
			TotalAmount: amount,
			PlacedAt:    row.PlacedAt,
			Note:        row.Note,
		})
	}
	return out, nil
}

// TotalsBetween sums the owner's orders placed in [from, to).
func (r *Repo) TotalsBetween(ctx context.Context, ownerID uuid.UUID, from, to time.Time) (domain.OrderTotals, error) {
	sql, args, err := postgres.Builder().
		Select("count(*)", "COALESCE(sum(total_amount), 0)::text").
		From(table).
		Where(squirrel.Eq{"owner_id": ownerID}).
		Where(squirrel.GtOrEq{"placed_at": from}).
		Where(squirrel.Lt{"placed_at": to}).
		ToSql()
	if err != nil {
		return domain.OrderTotals{}, fmt.Errorf("build order totals: %w", err)
	}

	var (
		count   int
		revenue string
	)
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&count, &revenue); err != nil {
		return domain.OrderTotals{}, fmt.Errorf("order totals: %w", err)
	}

	amount, err := decimal.NewFromString(revenue)
	if err != nil {
		return domain.OrderTotals{}, fmt.Errorf("order totals: parse revenue: %w", err)
	}
	return domain.OrderTotals{Count: count, Revenue: amount}, nil
}

type orderRow struct {
	ID          uuid.UUID `db:"id"`
	OwnerID     uuid.UUID `db:"owner_id"`
	TotalAmount string    `db:"total_amount"`
	PlacedAt    time.Time `db:"placed_at"`
	Note        string    `db:"note"`
}
