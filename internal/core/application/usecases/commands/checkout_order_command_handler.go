package commands

import (
	"context"
	"fmt"

	"storefront/internal/core/domain/events"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// advancesToShipped is the number of lifecycle advances before payment and
// shipment run: the order announces New, Processing, and Shipped.
const advancesToShipped = 3

// CheckoutOrderCommandHandler runs the full lifecycle workflow for one
// order: advance to Shipped, charge the order total with the selected
// payment method, ship, and advance to Delivered.
//
// The first failure aborts the remainder: a declined payment means shipment
// is never attempted, and a failed shipment leaves the order Shipped. A
// successful payment is not reversed when shipment fails afterwards.
type CheckoutOrderCommandHandler struct {
	orders        ports.OrderRepository
	publisher     ports.EventPublisher
	paymentPolicy services.FailurePolicy
	shipment      services.ShipmentService
}

// NewCheckoutOrderCommandHandler creates a handler for the checkout
// workflow. The payment policy is handed to whichever payment method the
// command selects.
func NewCheckoutOrderCommandHandler(
	orders ports.OrderRepository,
	publisher ports.EventPublisher,
	paymentPolicy services.FailurePolicy,
	shipment services.ShipmentService,
) CheckoutOrderCommandHandler {
	return CheckoutOrderCommandHandler{
		orders:        orders,
		publisher:     publisher,
		paymentPolicy: paymentPolicy,
		shipment:      shipment,
	}
}

// Handle processes the checkout command.
func (h *CheckoutOrderCommandHandler) Handle(ctx context.Context, cmd CheckoutOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	// The workflow runs once per order, starting from New.
	if aggregate.Status() != order.New {
		return errs.NewValueIsInvalidErrorWithCause("order",
			fmt.Errorf("checkout requires a New order, status is %s", aggregate.Status()))
	}

	// Resolve the method before touching the lifecycle so an unknown tag
	// leaves the order untouched.
	method, err := services.SelectPaymentMethod(cmd.PaymentMethod(), h.paymentPolicy)
	if err != nil {
		return err
	}

	for i := 0; i < advancesToShipped; i++ {
		h.announce(ctx, aggregate.Advance())
	}

	if err = h.orders.Update(ctx, aggregate); err != nil {
		return err
	}

	total := aggregate.Total()
	if err = method.Pay(total); err != nil {
		h.publish(ctx, events.PaymentFailed{Method: method.Name(), Reason: err.Error()})
		return err
	}
	h.publish(ctx, events.PaymentSucceeded{Amount: total.Amount(), Method: method.Name()})

	if err = h.shipment.Ship(aggregate); err != nil {
		h.publish(ctx, events.ShipmentFailed{Reason: err.Error()})
		return err
	}
	h.publish(ctx, events.ShipmentSucceeded{Customer: aggregate.Customer().String()})

	h.announce(ctx, aggregate.Advance())

	return h.orders.Update(ctx, aggregate)
}

func (h *CheckoutOrderCommandHandler) announce(ctx context.Context, entered order.Status) {
	h.publish(ctx, events.StateEntered{State: entered.String()})
}

// publish is best effort: event delivery is a display concern and never
// aborts the workflow.
func (h *CheckoutOrderCommandHandler) publish(ctx context.Context, event events.Event) {
	_ = h.publisher.Publish(ctx, event)
}
