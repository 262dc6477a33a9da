package inventory

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
)

// ItemFields holds the editable fields of an inventory item.
type ItemFields struct {
	Name         string
	Category     string
	CurrentStock *int
	MinStock     *int
	MaxStock     *int // nil = twice the minimum
	Unit         string
	CostPerUnit  decimal.Decimal
	Supplier     string
	ExpiryDate   *domain.Date
}

func (f ItemFields) validate() []domain.FieldError {
	var errs []domain.FieldError

	if strings.TrimSpace(f.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if strings.TrimSpace(f.Category) == "" {
		errs = append(errs, domain.FieldError{Field: "category", Message: "required"})
	}
	errs = checkStock(errs, "currentStock", f.CurrentStock, true)
	errs = checkStock(errs, "minStock", f.MinStock, true)
	errs = checkStock(errs, "maxStock", f.MaxStock, false)
	if f.CostPerUnit.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "costPerUnit", Message: "must not be negative"})
	}
	return errs
}

func checkStock(errs []domain.FieldError, field string, v *int, required bool) []domain.FieldError {
	switch {
	case v == nil:
		if required {
			errs = append(errs, domain.FieldError{Field: field, Message: "required"})
		}
	case *v < 0:
		errs = append(errs, domain.FieldError{Field: field, Message: "must not be negative"})
	case *v > domain.MaxStockLevel:
		errs = append(errs, domain.FieldError{Field: field, Message: stockTooLarge})
	}
	return errs
}

var stockTooLarge = fmt.Sprintf("must not exceed %d", domain.MaxStockLevel)

// apply copies the fields onto item. Fields must be valid.
func (f ItemFields) apply(item domain.InventoryItem) domain.InventoryItem {
	item.Name = strings.TrimSpace(f.Name)
	item.Category = strings.TrimSpace(f.Category)
	item.CurrentStock = *f.CurrentStock
	item.MinStock = *f.MinStock
	item.MaxStock = domain.DefaultMaxStock(*f.MinStock)
	if f.MaxStock != nil && *f.MaxStock > 0 {
		item.MaxStock = *f.MaxStock
	}
	item.Unit = strings.TrimSpace(f.Unit)
	item.CostPerUnit = f.CostPerUnit
	item.Supplier = strings.TrimSpace(f.Supplier)
	item.ExpiryDate = f.ExpiryDate
	if item.ExpiryDate != nil && item.ExpiryDate.IsZero() {
		item.ExpiryDate = nil
	}
	return item
}

// AddItemInput holds the parameters for adding an item.
type AddItemInput struct {
	ItemFields
}

// Validate checks all fields and collects all errors.
func (i AddItemInput) Validate() error {
	if errs := i.validate(); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateItemInput replaces every editable field of an item.
type UpdateItemInput struct {
	ID uuid.UUID
	ItemFields
	LastRestocked *domain.Date // nil = keep
}

// Validate checks all fields and collects all errors.
func (i UpdateItemInput) Validate() error {
	var errs []domain.FieldError
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = append(errs, i.validate()...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AdjustStockInput holds the parameters for a relative stock change.
type AdjustStockInput struct {
	ID    uuid.UUID
	Delta int
}

// Validate checks all fields and collects all errors.
func (i AdjustStockInput) Validate() error {
	var errs []domain.FieldError
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	switch {
	case i.Delta == 0:
		errs = append(errs, domain.FieldError{Field: "delta", Message: "must not be zero"})
	case i.Delta > domain.MaxStockLevel || i.Delta < -domain.MaxStockLevel:
		errs = append(errs, domain.FieldError{Field: "delta", Message: stockTooLarge})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteItemInput holds the parameters for deleting an item.
type DeleteItemInput struct {
	ID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteItemInput) Validate() error {
	if i.ID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	return nil
}

// ListItemsInput narrows and orders the item list.
type ListItemsInput struct {
	Search   string
	Category string
	Status   domain.InventoryStatus
	SortBy   domain.InventorySortKey
	Desc     bool
}

// Validate checks all fields and collects all errors.
func (i ListItemsInput) Validate() error {
	var errs []domain.FieldError
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if i.SortBy != "" && !i.SortBy.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sortBy", Message: "unknown sort key"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListItemsInput) filter() domain.InventoryFilter {
	return domain.InventoryFilter{
		Search:   i.Search,
		Category: i.Category,
		Status:   i.Status,
		SortBy:   i.SortBy,
		Desc:     i.Desc,
	}
}
