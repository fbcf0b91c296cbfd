package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrCheckoutOrderCommandIsNotConstructed = errors.New(
	"CheckoutOrderCommand must be created via NewCheckoutOrderCommand constructor",
)

// CheckoutOrderCommand represents a request to run the full lifecycle
// workflow of an order: advance to Shipped, charge the total with the
// selected payment method, ship, and advance to Delivered.
type CheckoutOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	paymentMethod string

	guard guard.ConstructorGuard
}

// NewCheckoutOrderCommand creates a checkout command. The payment method is
// a tag accepted by services.SelectPaymentMethod ("credit_card" or
// "paypal"); an unknown tag is rejected at workflow time, not here, since
// the command layer does not know the method registry.
func NewCheckoutOrderCommand(orderID kernel.UUID, paymentMethod string) (CheckoutOrderCommand, error) {
	checkoutCommand := CheckoutOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		checkoutCommand.setOrderID(orderID),
		checkoutCommand.setPaymentMethod(paymentMethod),
	); err != nil {
		return CheckoutOrderCommand{}, err
	}

	return checkoutCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutOrderCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c CheckoutOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PaymentMethod returns the selected payment method tag.
func (c CheckoutOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

func (c *CheckoutOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CheckoutOrderCommand) setPaymentMethod(method string) error {
	if method == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}
	c.paymentMethod = method
	return nil
}
