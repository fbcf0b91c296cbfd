// Package orderrepo provides the in-memory implementation of the
// OrderRepository port. Orders live only for the duration of the process;
// durable persistence is out of scope for this system.
package orderrepo

import (
	"context"
	"sync"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// Repository stores order aggregates in a process-local map keyed by the
// order ID string. Safe for concurrent use by the HTTP adapter; each order
// is still expected to be driven by one workflow at a time.
type Repository struct {
	mu     sync.RWMutex
	orders map[string]*order.Order
}

// NewRepository creates an empty in-memory order repository.
func NewRepository() *Repository {
	return &Repository{
		orders: make(map[string]*order.Order),
	}
}

// Add stores a new order aggregate. Fails if the aggregate is invalid or an
// order with the same ID already exists.
func (r *Repository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	key := aggregate.ID().String()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[key]; exists {
		return errs.NewValueIsInvalidError("order already exists: " + key)
	}

	r.orders[key] = aggregate
	return nil
}

// Update stores changes to an existing order aggregate.
// Fails with an ObjectNotFoundError if the order was never added.
func (r *Repository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	key := aggregate.ID().String()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[key]; !exists {
		return errs.NewObjectNotFoundError("orderId", key)
	}

	r.orders[key] = aggregate
	return nil
}

// Get retrieves an order aggregate by ID.
func (r *Repository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	aggregate, exists := r.orders[id.String()]
	if !exists {
		return nil, errs.NewObjectNotFoundError("orderId", id.String())
	}

	return aggregate, nil
}
