package services

import (
	"errors"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// ErrShipmentFailed is the sentinel wrapped by every ShipmentError.
var ErrShipmentFailed = errors.New("shipment failed")

// ShipmentError reports a failed shipment attempt.
type ShipmentError struct {
	message string
}

func (e *ShipmentError) Error() string {
	return e.message
}

func (e *ShipmentError) Unwrap() error {
	return ErrShipmentFailed
}

// ShipmentService attempts to ship finalized orders. Each attempt fails
// independently according to the configured failure policy; there is no
// retry and a successful payment is not reversed when shipment fails.
type ShipmentService struct {
	policy FailurePolicy
}

// NewShipmentService creates a shipment service using the given failure
// policy.
func NewShipmentService(policy FailurePolicy) (ShipmentService, error) {
	if policy == nil {
		return ShipmentService{}, errs.NewValueIsRequiredError("policy")
	}
	return ShipmentService{policy: policy}, nil
}

// Ship attempts to ship the order. Returns a *ShipmentError wrapping
// ErrShipmentFailed when the attempt fails.
func (s ShipmentService) Ship(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if s.policy.ShouldFail() {
		return &ShipmentError{message: "Shipment failed!"}
	}
	return nil
}
