package product

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct constructor.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is the simple PricedItem variant: a named item with a fixed,
// non-negative price. Products are immutable after construction and may be
// shared by reference across multiple orders.
type Product struct {
	name  string
	price kernel.Price

	guard guard.ConstructorGuard
}

// NewProduct creates a Product with the given name and price.
// The name must be non-empty and the price must be a validly constructed
// kernel.Price.
func NewProduct(name string, price kernel.Price) (*Product, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if err := price.Validate(); err != nil {
		return nil, err
	}

	return &Product{
		name:  name,
		price: price,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Product was created through NewProduct.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the product's fixed price.
func (p *Product) Price() kernel.Price {
	return p.price
}
