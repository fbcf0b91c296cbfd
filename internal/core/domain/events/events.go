// Package events defines the domain events emitted by the order lifecycle
// workflow. External collaborators (the HTTP adapter, log publishers)
// consume these for display; the workflow itself never reacts to them.
package events

import "fmt"

// Event is a domain event with a stable name for structured logging and a
// human-readable message for display.
type Event interface {
	// Name returns the machine-readable event name, e.g. "order.state_entered".
	Name() string

	// Message returns the human-readable display text.
	Message() string
}

// StateEntered announces that the order is in the named lifecycle state.
type StateEntered struct {
	// State is the lifecycle state name, e.g. "Processing".
	State string
}

func (e StateEntered) Name() string { return "order.state_entered" }

func (e StateEntered) Message() string {
	return fmt.Sprintf("Order is %s", e.State)
}

// PaymentSucceeded announces a successful charge.
type PaymentSucceeded struct {
	// Amount is the charged amount.
	Amount float64

	// Method is the display name of the payment method, e.g. "Credit Card".
	Method string
}

func (e PaymentSucceeded) Name() string { return "payment.succeeded" }

func (e PaymentSucceeded) Message() string {
	return fmt.Sprintf("Paid %.2f using %s", e.Amount, e.Method)
}

// PaymentFailed announces a declined charge. Reason carries the
// method-specific failure message.
type PaymentFailed struct {
	Method string
	Reason string
}

func (e PaymentFailed) Name() string { return "payment.failed" }

func (e PaymentFailed) Message() string { return e.Reason }

// ShipmentSucceeded announces a successful shipment. Customer is the
// display string of the order's customer.
type ShipmentSucceeded struct {
	Customer string
}

func (e ShipmentSucceeded) Name() string { return "shipment.succeeded" }

func (e ShipmentSucceeded) Message() string {
	return fmt.Sprintf("Order shipped to %s", e.Customer)
}

// ShipmentFailed announces a failed shipment attempt.
type ShipmentFailed struct {
	Reason string
}

func (e ShipmentFailed) Name() string { return "shipment.failed" }

func (e ShipmentFailed) Message() string { return e.Reason }
