package product

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrBundleIsNotConstructed is returned when a Bundle instance was not
// created through the NewBundle constructor.
var ErrBundleIsNotConstructed = errors.New("Bundle must be created via NewBundle constructor")

// Bundle is the composite PricedItem variant: a named, ordered collection of
// child items. A Bundle exclusively owns its child list; the children
// themselves may be shared with other bundles or orders.
//
// The bundle's price is always the sum of its children's prices at the time
// of the call. Nothing is cached, so adding a child after a prior price
// query is legal and reflected by the next query.
type Bundle struct {
	name  string
	items []PricedItem

	guard guard.ConstructorGuard
}

// NewBundle creates an empty Bundle with the given name.
func NewBundle(name string) (*Bundle, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Bundle{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Bundle was created through NewBundle.
func (b *Bundle) Validate() error {
	if b == nil {
		return ErrBundleIsNotConstructed
	}
	return b.guard.Validate(ErrBundleIsNotConstructed)
}

// Name returns the bundle's display name.
func (b *Bundle) Name() string {
	return b.name
}

// Add appends a child item to the bundle. The item must not be nil.
// Adding is legal at any time, including after prior price queries.
func (b *Bundle) Add(item PricedItem) error {
	if item == nil {
		return errs.NewValueIsRequiredError("item")
	}

	b.items = append(b.items, item)
	return nil
}

// Items returns the child items in insertion order. The returned slice is a
// copy; mutating it does not affect the bundle.
func (b *Bundle) Items() []PricedItem {
	items := make([]PricedItem, len(b.items))
	copy(items, b.items)
	return items
}

// Price returns the sum of all child prices, recursing into nested bundles.
func (b *Bundle) Price() kernel.Price {
	total := kernel.ZeroPrice()
	for _, item := range b.items {
		total = total.Add(item.Price())
	}
	return total
}
