package commands

import (
	"context"

	"storefront/internal/core/domain/model/customer"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for opening orders.
// Builds the customer value object and stores the order in New status.
type CreateOrderCommandHandler struct {
	orders ports.OrderRepository
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(orders ports.OrderRepository) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orders: orders,
	}
}

// Handle processes the order creation command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	buyer, err := customer.NewCustomer(cmd.CustomerName(), cmd.CustomerEmail())
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), buyer)
	if err != nil {
		return err
	}

	return h.orders.Add(ctx, aggregate)
}
