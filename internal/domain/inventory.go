package domain

import (
	"cmp"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryStatus is the stock band of an inventory item. It is always
// derived at read time and never trusted from storage.
type InventoryStatus string

const (
	InventoryStatusInStock    InventoryStatus = "in-stock"
	InventoryStatusLowStock   InventoryStatus = "low-stock"
	InventoryStatusOutOfStock InventoryStatus = "out-of-stock"
	InventoryStatusExpired    InventoryStatus = "expired"
)

// InventoryStatuses lists every status in display order.
var InventoryStatuses = []InventoryStatus{
	InventoryStatusInStock, InventoryStatusLowStock, InventoryStatusOutOfStock, InventoryStatusExpired,
}

func (s InventoryStatus) String() string { return string(s) }

func (s InventoryStatus) IsValid() bool {
	switch s {
	case InventoryStatusInStock, InventoryStatusLowStock, InventoryStatusOutOfStock, InventoryStatusExpired:
		return true
	}
	return false
}

// Inventory categories and units offered by the dashboard forms.
// Category and unit are free text in storage; these are the suggested values.
var (
	InventoryCategories = []string{
		"Vegetables", "Meat", "Seafood", "Dairy", "Condiments", "Herbs", "Dry Goods", "Beverages",
	}
	InventoryUnits = []string{
		"kg", "g", "L", "ml", "pieces", "bottles", "cans", "bunches", "boxes",
	}
)

// InventoryItem is a stocked ingredient or supply owned by one account.
type InventoryItem struct {
	ID            uuid.UUID       `json:"id"`
	OwnerID       uuid.UUID       `json:"-"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	CurrentStock  int             `json:"currentStock"`
	MinStock      int             `json:"minStock"`
	MaxStock      int             `json:"maxStock"`
	Unit          string          `json:"unit"`
	CostPerUnit   decimal.Decimal `json:"costPerUnit"`
	Supplier      string          `json:"supplier"`
	ExpiryDate    *Date           `json:"expiryDate"`
	LastRestocked Date            `json:"lastRestocked"`
	Status        InventoryStatus `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// DeriveInventoryStatus maps raw stock fields to exactly one status.
// Precedence: expired, then out-of-stock, then low-stock, else in-stock.
// An expiry equal to today is not yet expired.
func DeriveInventoryStatus(currentStock, minStock int, expiry *Date, today Date) InventoryStatus {
	switch {
	case expiry != nil && !expiry.IsZero() && expiry.Before(today):
		return InventoryStatusExpired
	case currentStock == 0:
		return InventoryStatusOutOfStock
	case currentStock <= minStock:
		return InventoryStatusLowStock
	default:
		return InventoryStatusInStock
	}
}

// WithStatus returns a copy of the item with Status derived for today.
func (i InventoryItem) WithStatus(today Date) InventoryItem {
	i.Status = DeriveInventoryStatus(i.CurrentStock, i.MinStock, i.ExpiryDate, today)
	return i
}

// IsLowStock reports the dashboard's low-stock condition: stocked but at or
// under the minimum, and not expired.
func (i InventoryItem) IsLowStock(today Date) bool {
	return i.WithStatus(today).Status == InventoryStatusLowStock
}

// Value is CurrentStock * CostPerUnit.
func (i InventoryItem) Value() decimal.Decimal {
	return i.CostPerUnit.Mul(decimal.NewFromInt(int64(i.CurrentStock)))
}

// ProjectInventory re-derives the status of every item for today.
// The input slice is not modified.
func ProjectInventory(items []InventoryItem, today Date) []InventoryItem {
	out := make([]InventoryItem, len(items))
	for idx, item := range items {
		out[idx] = item.WithStatus(today)
	}
	return out
}

// MaxStockLevel is the largest stock quantity the store can hold.
const MaxStockLevel = math.MaxInt32

// ApplyStockDelta adds delta to the current stock, clamped to
// [0, MaxStockLevel]. LastRestocked moves to today only for a positive delta.
func ApplyStockDelta(item InventoryItem, delta int, today Date) InventoryItem {
	delta = min(max(delta, -MaxStockLevel), MaxStockLevel)
	item.CurrentStock = min(max(0, item.CurrentStock+delta), MaxStockLevel)
	if delta > 0 {
		item.LastRestocked = today
	}
	return item
}

// DefaultMaxStock returns the max stock used when none is given.
func DefaultMaxStock(minStock int) int {
	return min(minStock*2, MaxStockLevel)
}

// ---------------------------------------------------------------------------
// Filtering and sorting
// ---------------------------------------------------------------------------

// InventorySortKey selects the column a list is sorted on.
type InventorySortKey string

const (
	InventorySortName          InventorySortKey = "name"
	InventorySortCategory      InventorySortKey = "category"
	InventorySortStock         InventorySortKey = "currentStock"
	InventorySortLastRestocked InventorySortKey = "lastRestocked"
	InventorySortExpiry        InventorySortKey = "expiryDate"
	InventorySortCost          InventorySortKey = "costPerUnit"
)

func (k InventorySortKey) IsValid() bool {
	switch k {
	case InventorySortName, InventorySortCategory, InventorySortStock,
		InventorySortLastRestocked, InventorySortExpiry, InventorySortCost:
		return true
	}
	return false
}

// InventoryFilter narrows and orders an already projected inventory list.
type InventoryFilter struct {
	Search   string
	Category string
	Status   InventoryStatus
	SortBy   InventorySortKey
	Desc     bool
}

// FilterInventory applies f to items. Items must already carry a derived status.
// Search matches name or supplier case-insensitively. Without SortBy the
// incoming order is kept.
func FilterInventory(items []InventoryItem, f InventoryFilter) []InventoryItem {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]InventoryItem, 0, len(items))
	for _, item := range items {
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Name), search) &&
			!strings.Contains(strings.ToLower(item.Supplier), search) {
			continue
		}
		if f.Category != "" && f.Category != "all" && !strings.EqualFold(item.Category, f.Category) {
			continue
		}
		if f.Status != "" && item.Status != f.Status {
			continue
		}
		out = append(out, item)
	}

	if f.SortBy == "" {
		return out
	}

	slices.SortStableFunc(out, func(a, b InventoryItem) int {
		c := compareInventory(a, b, f.SortBy)
		if f.Desc {
			return -c
		}
		return c
	})
	return out
}

func compareInventory(a, b InventoryItem, key InventorySortKey) int {
	switch key {
	case InventorySortCategory:
		return strings.Compare(strings.ToLower(a.Category), strings.ToLower(b.Category))
	case InventorySortStock:
		return cmp.Compare(a.CurrentStock, b.CurrentStock)
	case InventorySortLastRestocked:
		return a.LastRestocked.Compare(b.LastRestocked)
	case InventorySortExpiry:
		return compareOptionalDate(a.ExpiryDate, b.ExpiryDate)
	case InventorySortCost:
		return a.CostPerUnit.Cmp(b.CostPerUnit)
	default:
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	}
}

// compareOptionalDate orders missing dates last.
func compareOptionalDate(a, b *Date) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return a.Compare(*b)
}
