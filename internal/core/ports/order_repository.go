package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the storage contract for order aggregates within
// a session. Orders are not persisted beyond the process; the contract
// exists so the application layer stays independent of the storage choice.
type OrderRepository interface {
	// Add stores a new order aggregate.
	// Fails if an order with the same ID already exists.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update stores changes to an existing order aggregate.
	// Fails if the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an errs.ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
