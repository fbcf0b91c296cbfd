package commands

import (
	"context"

	"storefront/internal/core/ports"
)

// AddItemCommandHandler appends priced items to stored orders.
//
// Items should be added while the order is still New; the aggregate does
// not enforce this, matching the documented precondition.
type AddItemCommandHandler struct {
	orders ports.OrderRepository
}

// NewAddItemCommandHandler creates a handler for item appends.
func NewAddItemCommandHandler(orders ports.OrderRepository) AddItemCommandHandler {
	return AddItemCommandHandler{
		orders: orders,
	}
}

// Handle processes the add-item command.
func (h *AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AddItem(cmd.Item()); err != nil {
		return err
	}

	return h.orders.Update(ctx, aggregate)
}
