// Package kernel contains the shared value objects of the storefront domain:
// UUID identifiers and the Price value used by the pricing model.
//
// All value objects in this package are immutable, created through validating
// constructors, and detect improper zero-value construction via Validate.
package kernel
