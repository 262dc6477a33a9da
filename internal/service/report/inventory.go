package report

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
)

// InventoryLine is one item of the valuation report.
type InventoryLine struct {
	Name         string                 `json:"name"`
	Category     string                 `json:"category"`
	CurrentStock int                    `json:"currentStock"`
	Unit         string                 `json:"unit"`
	CostPerUnit  decimal.Decimal        `json:"costPerUnit"`
	Value        decimal.Decimal        `json:"value"`
	Status       domain.InventoryStatus `json:"status"`
}

// CategoryTotal sums the value of one category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Items    int             `json:"items"`
	Value    decimal.Decimal `json:"value"`
}

// InventoryReport values the owner's stock at cost.
type InventoryReport struct {
	BusinessName string                         `json:"businessName"`
	GeneratedAt  time.Time                      `json:"generatedAt"`
	AsOf         domain.Date                    `json:"asOf"`
	Lines        []InventoryLine                `json:"lines"`
	Categories   []CategoryTotal                `json:"categories"`
	StatusCounts map[domain.InventoryStatus]int `json:"statusCounts"`
	TotalValue   decimal.Decimal                `json:"totalValue"`
}

// Inventory builds the valuation report. Lines are ordered by category then
// name; categories by value, highest first.
func (s *Service) Inventory(ctx context.Context) (InventoryReport, error) {
	ownerID, err := ownerFromCtx(ctx)
	if err != nil {
		return InventoryReport{}, err
	}

	acc, err := s.accounts.GetByID(ctx, ownerID)
	if err != nil {
		return InventoryReport{}, fmt.Errorf("load account: %w", err)
	}
	items, err := s.inventory.List(ctx, ownerID)
	if err != nil {
		return InventoryReport{}, fmt.Errorf("list inventory: %w", err)
	}

	today := s.today()
	rep := InventoryReport{
		BusinessName: acc.BusinessName,
		GeneratedAt:  s.now().UTC(),
		AsOf:         today,
		Lines:        make([]InventoryLine, 0, len(items)),
		StatusCounts: make(map[domain.InventoryStatus]int, len(domain.InventoryStatuses)),
		TotalValue:   decimal.Zero,
	}
	for _, st := range domain.InventoryStatuses {
		rep.StatusCounts[st] = 0
	}

	byCategory := make(map[string]*CategoryTotal)
	for _, item := range domain.ProjectInventory(items, today) {
		value := item.Value()
		rep.Lines = append(rep.Lines, InventoryLine{
			Name:         item.Name,
			Category:     item.Category,
			CurrentStock: item.CurrentStock,
			Unit:         item.Unit,
			CostPerUnit:  item.CostPerUnit,
			Value:        value,
			Status:       item.Status,
		})
		rep.StatusCounts[item.Status]++
		rep.TotalValue = rep.TotalValue.Add(value)

		ct, ok := byCategory[item.Category]
		if !ok {
			ct = &CategoryTotal{Category: item.Category, Value: decimal.Zero}
			byCategory[item.Category] = ct
		}
		ct.Items++
		ct.Value = ct.Value.Add(value)
	}

	slices.SortFunc(rep.Lines, func(a, b InventoryLine) int {
		return cmp.Or(cmp.Compare(a.Category, b.Category), cmp.Compare(a.Name, b.Name))
	})

	rep.Categories = make([]CategoryTotal, 0, len(byCategory))
	for _, ct := range byCategory {
		rep.Categories = append(rep.Categories, *ct)
	}
	slices.SortFunc(rep.Categories, func(a, b CategoryTotal) int {
		return cmp.Or(b.Value.Cmp(a.Value), cmp.Compare(a.Category, b.Category))
	})

	s.log.InfoContext(ctx, "inventory report built",
		slog.String("owner_id", ownerID.String()),
		slog.Int("items", len(rep.Lines)),
	)

	return rep, nil
}
