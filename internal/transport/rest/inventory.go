package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/inventory"
)

type inventoryService interface {
	AddItem(ctx context.Context, input inventory.AddItemInput) (domain.InventoryItem, error)
	UpdateItem(ctx context.Context, input inventory.UpdateItemInput) (domain.InventoryItem, error)
	AdjustStock(ctx context.Context, input inventory.AdjustStockInput) (domain.InventoryItem, error)
	DeleteItem(ctx context.Context, input inventory.DeleteItemInput) error
	ListItems(ctx context.Context, input inventory.ListItemsInput) ([]domain.InventoryItem, error)
	GetItem(ctx context.Context, id uuid.UUID) (domain.InventoryItem, error)
}

// InventoryHandler serves the inventory collection.
type InventoryHandler struct {
	svc inventoryService
	log *slog.Logger
}

// NewInventoryHandler creates an InventoryHandler.
func NewInventoryHandler(svc inventoryService, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{svc: svc, log: logger.With("handler", "inventory")}
}

type itemRequest struct {
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	CurrentStock  *int            `json:"currentStock"`
	MinStock      *int            `json:"minStock"`
	MaxStock      *int            `json:"maxStock"`
	Unit          string          `json:"unit"`
	CostPerUnit   decimal.Decimal `json:"costPerUnit"`
	Supplier      string          `json:"supplier"`
	ExpiryDate    *domain.Date    `json:"expiryDate"`
	LastRestocked *domain.Date    `json:"lastRestocked"`
}

func (req itemRequest) fields() inventory.ItemFields {
	return inventory.ItemFields{
		Name:         req.Name,
		Category:     req.Category,
		CurrentStock: req.CurrentStock,
		MinStock:     req.MinStock,
		MaxStock:     req.MaxStock,
		Unit:         req.Unit,
		CostPerUnit:  req.CostPerUnit,
		Supplier:     req.Supplier,
		ExpiryDate:   req.ExpiryDate,
	}
}

type adjustRequest struct {
	Delta int `json:"delta"`
}

// List handles GET /api/inventory.
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.svc.ListItems(r.Context(), inventory.ListItemsInput{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Status:   domain.InventoryStatus(q.Get("status")),
		SortBy:   domain.InventorySortKey(q.Get("sortBy")),
		Desc:     queryBool(r, "desc"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Get handles GET /api/inventory/{id}.
func (h *InventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	item, err := h.svc.GetItem(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Create handles POST /api/inventory.
func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	item, err := h.svc.AddItem(r.Context(), inventory.AddItemInput{ItemFields: req.fields()})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// Update handles PUT /api/inventory/{id}.
func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req itemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	item, err := h.svc.UpdateItem(r.Context(), inventory.UpdateItemInput{
		ID:            id,
		ItemFields:    req.fields(),
		LastRestocked: req.LastRestocked,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Adjust handles POST /api/inventory/{id}/adjust.
func (h *InventoryHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req adjustRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	item, err := h.svc.AdjustStock(r.Context(), inventory.AdjustStockInput{ID: id, Delta: req.Delta})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /api/inventory/{id}.
func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteItem(r.Context(), inventory.DeleteItemInput{ID: id}); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
