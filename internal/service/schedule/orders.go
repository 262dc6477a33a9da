package schedule

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
	"github.com/AFTLlimited25/Platrr-Business/internal/service/gateway"
)

// CreateOrder records a completed sale for the signed-in owner.
func (s *Service) CreateOrder(ctx context.Context, input CreateOrderInput) (domain.Order, error) {
	const op = "create order"

	sc, err := ownerScope(ctx)
	if err != nil {
		return domain.Order{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Order{}, s.orderReport.Failed(ctx, sc, op, "Invalid order", err)
	}

	placed := s.now().UTC()
	if input.PlacedAt != nil {
		placed = input.PlacedAt.UTC()
	}

	order, err := s.orders.Create(ctx, domain.Order{
		ID:          uuid.New(),
		OwnerID:     sc.Key,
		TotalAmount: input.TotalAmount,
		PlacedAt:    placed,
		Note:        input.Note,
	})
	if err != nil {
		return domain.Order{}, s.orderReport.Failed(ctx, sc, op, "Save failed", err)
	}

	s.orderReport.Succeeded(ctx, sc, gateway.Outcome{
		Title:    "Order recorded",
		Detail:   fmt.Sprintf("Order of %s recorded.", order.TotalAmount.StringFixed(2)),
		EntityID: order.ID.String(),
		Activity: fmt.Sprintf("New order of %s", order.TotalAmount.StringFixed(2)),
	})

	s.log.InfoContext(ctx, "order created",
		slog.String("order_id", order.ID.String()),
		slog.String("total", order.TotalAmount.String()),
	)

	return order, nil
}

// ListOrders returns the owner's orders, newest first.
func (s *Service) ListOrders(ctx context.Context) ([]domain.Order, error) {
	sc, err := ownerScope(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.List(ctx, sc.Key)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}
