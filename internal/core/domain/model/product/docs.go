// Package product implements the pricing model of the storefront domain.
//
// The package is built around the PricedItem capability: anything that can
// report a price. Two variants exist:
//   - Product: a leaf item with a fixed price
//   - Bundle: a composite whose price is the sum of its children's prices,
//     recomputed on every query so later mutations of children are reflected
//
// Items are shared by reference: the same Product or Bundle instance may
// appear in several orders. Apart from Bundle.Add, items are never mutated
// after construction.
package product
