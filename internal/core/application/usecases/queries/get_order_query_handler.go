package queries

import (
	"context"

	"storefront/internal/core/ports"
)

// GetOrderQueryHandler resolves order views from the repository.
type GetOrderQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for order view queries.
func NewGetOrderQueryHandler(orders ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		orders: orders,
	}
}

// Handle resolves the query into an OrderView.
func (h *GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	aggregate, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return OrderView{}, err
	}

	items := aggregate.Items()
	views := make([]ItemView, len(items))
	for i, item := range items {
		views[i] = ItemView{
			Name:  item.Name(),
			Price: item.Price().Amount(),
		}
	}

	return OrderView{
		ID:       aggregate.ID(),
		Customer: aggregate.Customer().String(),
		Status:   aggregate.Status().String(),
		Total:    aggregate.Total().Amount(),
		Items:    views,
	}, nil
}
