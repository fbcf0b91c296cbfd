package kernel

import (
	"fmt"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrPriceIsNotConstructed is returned when validating a Price that was not
// created via NewPrice or ZeroPrice.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError(
	"price must be created via NewPrice or ZeroPrice constructors")

// Price is an immutable non-negative monetary amount. It carries no currency
// and makes no rounding guarantees; standard float64 semantics apply.
//
// The zero value of Price is invalid and fails validation; use the
// constructors.
//
// Example:
//
//	price, err := kernel.NewPrice(1000)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("price: %s", price) // Output: price: 1000.00
type Price struct {
	amount float64
	guard  guard.ConstructorGuard
}

// NewPrice creates a Price from a non-negative amount.
// Returns an error if amount is negative.
func NewPrice(amount float64) (Price, error) {
	if amount < 0 {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is not greater than or equal to 0", amount))
	}

	return Price{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// ZeroPrice returns a valid Price of zero. It is the identity element for
// Add and the total of an order with no items.
func ZeroPrice() Price {
	return Price{
		guard: guard.NewConstructorGuard(),
	}
}

// Amount returns the numeric amount.
func (p Price) Amount() float64 {
	return p.amount
}

// Add returns a new Price holding the sum of both amounts.
func (p Price) Add(other Price) Price {
	return Price{
		amount: p.amount + other.amount,
		guard:  guard.NewConstructorGuard(),
	}
}

// IsEqual reports whether both prices hold the same amount.
func (p Price) IsEqual(other Price) bool {
	return p.amount == other.amount
}

// String formats the amount with two decimal places.
func (p Price) String() string {
	return fmt.Sprintf("%.2f", p.amount)
}

// Validate returns ErrPriceIsNotConstructed for the zero value of Price.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}
