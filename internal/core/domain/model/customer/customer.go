package customer

import (
	"errors"
	"fmt"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through the NewCustomer constructor.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the identity attached to an order. It is an immutable value
// object with no behavior beyond display.
//
// Invariants:
//   - Name and email are non-empty
//   - Can only be created through NewCustomer
type Customer struct { //nolint:recvcheck //using for validation
	name  string
	email string

	guard guard.ConstructorGuard
}

// NewCustomer creates a Customer with the given name and email.
// Both fields are required; returns a validation error otherwise.
func NewCustomer(name string, email string) (Customer, error) {
	customer := Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setName(name),
		customer.setEmail(email),
	); err != nil {
		return Customer{}, err
	}

	return customer, nil
}

// Validate ensures the Customer was created through NewCustomer.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// Name returns the customer's display name.
func (c Customer) Name() string {
	return c.name
}

// Email returns the customer's email address.
func (c Customer) Email() string {
	return c.email
}

// String returns the display form used by shipment events,
// e.g. "Alice <alice@example.com>".
func (c Customer) String() string {
	return fmt.Sprintf("%s <%s>", c.name, c.email)
}

// IsEqual compares two customers by name and email.
func (c Customer) IsEqual(other Customer) bool {
	return c.name == other.name && c.email == other.email
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}
