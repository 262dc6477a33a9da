package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/gateway"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/scope"
)

// AdjustStock adds delta to the current stock. The result is clamped at
// zero and lastRestocked moves to today only for a positive delta.
func (s *Service) AdjustStock(ctx context.Context, input AdjustStockInput) (domain.InventoryItem, error) {
	const op = "adjust stock"

	sc, err := scope.FromCtx(ctx)
	if err != nil {
		return domain.InventoryItem{}, s.report.Failed(ctx, sc, op, "Stock update failed", err)
	}
	if err := input.Validate(); err != nil {
		return domain.InventoryItem{}, s.report.Failed(ctx, sc, op, "Stock update failed", err)
	}

	today := s.today()
	item, err := s.store(sc).AdjustStock(ctx, sc.Key, input.ID, input.Delta, today)
	if err != nil {
		return domain.InventoryItem{}, s.report.Failed(ctx, sc, op, "Stock update failed", err)
	}

	verb := "Restocked"
	if input.Delta < 0 {
		verb = "Used"
	}
	s.report.Succeeded(ctx, sc, gateway.Outcome{
		Title:    "Stock updated",
		Detail:   fmt.Sprintf("%s stock is now %d %s.", item.Name, item.CurrentStock, item.Unit),
		EntityID: item.ID.String(),
		Activity: fmt.Sprintf("%s %d %s of %s", verb, abs(input.Delta), item.Unit, item.Name),
	})

	s.log.InfoContext(ctx, "stock adjusted",
		slog.String("mode", sc.Mode()),
		slog.String("item_id", item.ID.String()),
		slog.Int("delta", input.Delta),
		slog.Int("stock", item.CurrentStock),
	)

	return item.WithStatus(today), nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
