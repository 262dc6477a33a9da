// Package inventory implements the inventory item repository using PostgreSQL.
// Status is never stored: rows are returned raw and projected by the caller.
package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	postgres "github.com/AFTLlimited25/Platrr-Business/internal/adapter/postgres"
	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
)

const (
	table  = "inventory_items"
	entity = "inventory_item"
)

var columns = []string{
	"id", "owner_id", "name", "category", "current_stock", "min_stock", "max_stock", "unit",
	"cost_per_unit::text AS cost_per_unit", "supplier", "expiry_date", "last_restocked",
	"created_at", "updated_at",
}

// Repo provides inventory persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new inventory repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns the owner's items, most recently restocked first.
// Returns an empty slice (not nil) when the owner has no items.
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID) ([]domain.InventoryItem, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("last_restocked DESC", "created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list inventory: %w", err)
	}

	var rows []itemRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}

	return toDomainItems(rows)
}

// Get returns one item of the owner.
func (r *Repo) Get(ctx context.Context, ownerID, id uuid.UUID) (domain.InventoryItem, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"owner_id": ownerID, "id": id}).
		ToSql()
	if err != nil {
		return domain.InventoryItem{}, fmt.Errorf("build get inventory: %w", err)
	}

	var row itemRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return domain.InventoryItem{}, postgres.MapError(err, entity, id)
	}

	return row.toDomain()
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new item and returns it as stored.
func (r *Repo) Create(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "owner_id", "name", "category", "current_stock", "min_stock", "max_stock",
			"unit", "cost_per_unit", "supplier", "expiry_date", "last_restocked", "created_at", "updated_at").
		Values(item.ID, item.OwnerID, item.Name, item.Category, item.CurrentStock, item.MinStock, item.MaxStock,
			item.Unit, item.CostPerUnit.String(), item.Supplier, datePtrArg(item.ExpiryDate), item.LastRestocked.Time(),
			item.CreatedAt, item.UpdatedAt).
		Suffix("RETURNING " + returning()).
		ToSql()
	if err != nil {
		return domain.InventoryItem{}, fmt.Errorf("build create inventory: %w", err)
	}

	var row itemRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return domain.InventoryItem{}, postgres.MapError(err, entity, item.ID)
	}

	return row.toDomain()
}

// Update replaces every editable field of the item. Last writer wins.
func (r *Repo) Update(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error) {
	sql, args, err := postgres.Builder().
		Update(table).
		SetMap(map[string]any{
			"name":           item.Name,
			"category":       item.Category,
			"current_stock":  item.CurrentStock,
			"min_stock":      item.MinStock,
			"max_stock":      item.MaxStock,
			"unit":           item.Unit,
			"cost_per_unit":  item.CostPerUnit.String(),
			"supplier":       item.Supplier,
			"expiry_date":    datePtrArg(item.ExpiryDate),
			"last_restocked": item.LastRestocked.Time(),
			"updated_at":     item.UpdatedAt,
		}).
		Where(squirrel.Eq{"owner_id": item.OwnerID, "id": item.ID}).
		Suffix("RETURNING " + returning()).
		ToSql()
	if err != nil {
		return domain.InventoryItem{}, fmt.Errorf("build update inventory: %w", err)
	}

	var row itemRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return domain.InventoryItem{}, postgres.MapError(err, entity, item.ID)
	}

	return row.toDomain()
}

// AdjustStock adds delta to the stock in one statement, clamped to
// [0, domain.MaxStockLevel]. A positive delta also moves last_restocked to today.
func (r *Repo) AdjustStock(ctx context.Context, ownerID, id uuid.UUID, delta int, today domain.Date) (domain.InventoryItem, error) {
	b := postgres.Builder().
		Update(table).
		Set("current_stock", squirrel.Expr("LEAST(GREATEST(current_stock::bigint + ?, 0), ?)", delta, domain.MaxStockLevel)).
		Set("updated_at", squirrel.Expr("now()"))
	if delta > 0 {
		b = b.Set("last_restocked", today.Time())
	}

	sql, args, err := b.
		Where(squirrel.Eq{"owner_id": ownerID, "id": id}).
		Suffix("RETURNING " + returning()).
		ToSql()
	if err != nil {
		return domain.InventoryItem{}, fmt.Errorf("build adjust stock: %w", err)
	}

	var row itemRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return domain.InventoryItem{}, postgres.MapError(err, entity, id)
	}

	return row.toDomain()
}

// Delete removes the item. Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"owner_id": ownerID, "id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete inventory: %w", err)
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

type itemRow struct {
	ID            uuid.UUID  `db:"id"`
	OwnerID       uuid.UUID  `db:"owner_id"`
	Name          string     `db:"name"`
	Category      string     `db:"category"`
	CurrentStock  int        `db:"current_stock"`
	MinStock      int        `db:"min_stock"`
	MaxStock      int        `db:"max_stock"`
	Unit          string     `db:"unit"`
	CostPerUnit   string     `db:"cost_per_unit"`
	Supplier      string     `db:"supplier"`
	ExpiryDate    *time.Time `db:"expiry_date"`
	LastRestocked time.Time  `db:"last_restocked"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

func (row itemRow) toDomain() (domain.InventoryItem, error) {
	cost, err := decimal.NewFromString(row.CostPerUnit)
	if err != nil {
		return domain.InventoryItem{}, fmt.Errorf("%s %s: parse cost_per_unit: %w", entity, row.ID, err)
	}

	return domain.InventoryItem{
		ID:            row.ID,
		OwnerID:       row.OwnerID,
		Name:          row.Name,
		Category:      row.Category,
		CurrentStock:  row.CurrentStock,
		MinStock:      row.MinStock,
		MaxStock:      row.MaxStock,
		Unit:          row.Unit,
		CostPerUnit:   cost,
		Supplier:      row.Supplier,
		ExpiryDate:    domain.DatePtr(row.ExpiryDate),
		LastRestocked: domain.DateOf(row.LastRestocked),
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}, nil
}

func toDomainItems(rows []itemRow) ([]domain.InventoryItem, error) {
	items := make([]domain.InventoryItem, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func returning() string {
	return strings.Join(columns, ", ")
}

func datePtrArg(d *domain.Date) *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time()
	return &t
}
