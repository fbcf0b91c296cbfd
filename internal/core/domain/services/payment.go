package services

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Payment method tags accepted by SelectPaymentMethod.
const (
	PaymentMethodCreditCard = "credit_card"
	PaymentMethodPayPal     = "paypal"
)

// ErrPaymentFailed is the sentinel wrapped by every PaymentError.
var ErrPaymentFailed = errors.New("payment failed")

// PaymentError reports a declined payment attempt. The message is specific
// to the payment method that declined.
type PaymentError struct {
	// Method is the display name of the method that failed, e.g. "Credit Card".
	Method string

	message string
}

func (e *PaymentError) Error() string {
	return e.message
}

func (e *PaymentError) Unwrap() error {
	return ErrPaymentFailed
}

// PaymentMethod is the capability of charging an amount. Each method
// attempts a single charge per invocation; a failed attempt is final, there
// is no retry.
type PaymentMethod interface {
	// Name returns the display name of the method, e.g. "Credit Card".
	Name() string

	// Pay attempts to charge the amount. Returns a *PaymentError wrapping
	// ErrPaymentFailed when the attempt is declined. An amount of zero
	// still follows the same success/failure policy.
	Pay(amount kernel.Price) error
}

// CreditCard is the credit card payment method.
type CreditCard struct {
	policy FailurePolicy
}

// NewCreditCard creates a credit card method using the given failure policy.
func NewCreditCard(policy FailurePolicy) (CreditCard, error) {
	if policy == nil {
		return CreditCard{}, errs.NewValueIsRequiredError("policy")
	}
	return CreditCard{policy: policy}, nil
}

// Name returns "Credit Card".
func (c CreditCard) Name() string {
	return "Credit Card"
}

// Pay attempts to charge the amount against the credit card.
func (c CreditCard) Pay(amount kernel.Price) error {
	if err := amount.Validate(); err != nil {
		return err
	}

	if c.policy.ShouldFail() {
		return &PaymentError{Method: c.Name(), message: "Credit Card payment failed!"}
	}
	return nil
}

// PayPal is the PayPal payment method.
type PayPal struct {
	policy FailurePolicy
}

// NewPayPal creates a PayPal method using the given failure policy.
func NewPayPal(policy FailurePolicy) (PayPal, error) {
	if policy == nil {
		return PayPal{}, errs.NewValueIsRequiredError("policy")
	}
	return PayPal{policy: policy}, nil
}

// Name returns "PayPal".
func (p PayPal) Name() string {
	return "PayPal"
}

// Pay attempts to charge the amount via PayPal.
func (p PayPal) Pay(amount kernel.Price) error {
	if err := amount.Validate(); err != nil {
		return err
	}

	if p.policy.ShouldFail() {
		return &PaymentError{Method: p.Name(), message: "PayPal payment failed!"}
	}
	return nil
}

// SelectPaymentMethod resolves a payment method tag ("credit_card" or
// "paypal") to a PaymentMethod wired with the given failure policy.
func SelectPaymentMethod(tag string, policy FailurePolicy) (PaymentMethod, error) {
	switch tag {
	case PaymentMethodCreditCard:
		method, err := NewCreditCard(policy)
		if err != nil {
			return nil, err
		}
		return method, nil
	case PaymentMethodPayPal:
		method, err := NewPayPal(policy)
		if err != nil {
			return nil, err
		}
		return method, nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%q is not a known payment method", tag))
	}
}
