package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrAddItemCommandIsNotConstructed = errors.New(
	"AddItemCommand must be created via NewAddItemCommand constructor",
)

// AddItemCommand represents a request to append a priced item to an order.
// The item may be a simple product or a composed bundle; composition happens
// before the command is built.
type AddItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	item    product.PricedItem

	guard guard.ConstructorGuard
}

// NewAddItemCommand creates a command to append an item to the order.
// Validates that the order ID is valid and the item is not nil.
func NewAddItemCommand(orderID kernel.UUID, item product.PricedItem) (AddItemCommand, error) {
	itemCommand := AddItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setOrderID(orderID),
		itemCommand.setItem(item),
	); err != nil {
		return AddItemCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AddItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Item returns the priced item to append.
func (c AddItemCommand) Item() product.PricedItem {
	return c.item
}

func (c *AddItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AddItemCommand) setItem(item product.PricedItem) error {
	if item == nil {
		return errs.NewValueIsRequiredError("item")
	}
	c.item = item
	return nil
}
