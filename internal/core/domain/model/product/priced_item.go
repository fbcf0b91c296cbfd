package product

import "storefront/internal/core/domain/model/kernel"

// PricedItem is the capability shared by everything that carries a price.
// Product implements it with a fixed price; Bundle implements it by summing
// its children recursively.
type PricedItem interface {
	// Name returns the display name of the item.
	Name() string

	// Price returns the current price of the item. For composites the value
	// is recomputed on every call; there is no caching.
	Price() kernel.Price
}
