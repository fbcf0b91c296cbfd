package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status represents the fulfillment state of an order.
//
// State transitions:
//
//	New ──> Processing ──> Shipped ──> Delivered
//	                                       │
//	                                       └──> Delivered (terminal)
//
// Status is a value object; Next performs a single transition step and is
// total: Delivered maps to itself.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status of a freshly created order.
	// Items are expected to be added while the order is New.
	New

	// Processing indicates the order has entered fulfillment.
	Processing

	// Shipped indicates the order has left the warehouse. Payment and
	// shipment operations run against orders in this status.
	Shipped

	// Delivered indicates the order reached the customer.
	// This is a terminal state with no further transitions.
	Delivered
)

// getStatusStrings returns a map of Status values to their string
// representations, including Unknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		New:        "New",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
	}
}

// getValidStatusStrings returns only the valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:        "New",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
	}
}

// Validate checks that the Status is one of the defined lifecycle states.
// Unknown and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Next returns the status one transition step ahead:
// New -> Processing -> Shipped -> Delivered. Delivered is terminal and maps
// to itself; Unknown also maps to itself so callers never observe a made-up
// state for an invalid input.
func (s Status) Next() Status {
	switch s {
	case New:
		return Processing
	case Processing:
		return Shipped
	case Shipped:
		return Delivered
	case Delivered:
		return Delivered
	default:
		return Unknown
	}
}

// IsTerminal reports whether the status permits no further progress.
func (s Status) IsTerminal() bool {
	return s == Delivered
}
