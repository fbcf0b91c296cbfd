package order

import (
	"errors"

	"storefront/internal/core/domain/model/customer"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through the NewOrder factory method.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root of a single retail purchase. It owns a
// customer, an ordered collection of priced items, and the current
// lifecycle status.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a constructed customer
//   - Starts in status New with an empty item list
//   - Status changes only through Advance, one lifecycle step at a time
//   - Total is always the live sum of item prices (no caching)
//
// Items may be shared by reference with other orders; the item list itself
// is exclusively owned by this order.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customer is the identity the order is addressed to
	customer customer.Customer

	// items holds the priced items in insertion order
	items []product.PricedItem

	// status is the current lifecycle state
	status Status

	// announced records whether the initial New state was already
	// announced; the first Advance call announces without transitioning
	announced bool

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates an Order for the given customer. The order starts in
// status New with no items.
//
// Example:
//
//	id := kernel.NewUUID()
//	buyer, _ := customer.NewCustomer("Alice", "alice@example.com")
//	o, err := order.NewOrder(id, buyer)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id kernel.UUID, buyer customer.Customer) (*Order, error) {
	order := &Order{
		status:        New,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomer(buyer),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder. Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns the customer the order is addressed to.
func (o *Order) Customer() customer.Customer {
	return o.customer
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the order's items in insertion order. The returned slice is
// a copy; the items themselves are shared references.
func (o *Order) Items() []product.PricedItem {
	items := make([]product.PricedItem, len(o.items))
	copy(items, o.items)
	return items
}

// AddItem appends a priced item to the order.
//
// Items should be added before the lifecycle workflow starts; this
// precondition is documented, not enforced, so a late append is accepted.
func (o *Order) AddItem(item product.PricedItem) error {
	if item == nil {
		return errs.NewValueIsRequiredError("item")
	}

	o.items = append(o.items, item)
	return nil
}

// Total returns the sum of all item prices. An order without items totals
// zero. The value is recomputed on every call, so composite items mutated
// after being added are reflected.
func (o *Order) Total() kernel.Price {
	total := kernel.ZeroPrice()
	for _, item := range o.items {
		total = total.Add(item.Price())
	}
	return total
}

// Advance moves the order one lifecycle step and returns the status the
// order is in when the call returns, which is also the state to announce.
//
// The first call on a fresh order announces New without transitioning;
// every later call transitions via Status.Next and announces the entered
// state. Three calls on a New order therefore end at Shipped (announcing
// New, Processing, Shipped) and a fourth reaches Delivered. Delivered is
// terminal: further calls keep returning Delivered.
//
// Advance never fails.
func (o *Order) Advance() Status {
	if o.announced {
		o.status = o.status.Next()
	}
	o.announced = true
	return o.status
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(buyer customer.Customer) error {
	if err := buyer.Validate(); err != nil {
		return err
	}
	o.customer = buyer
	return nil
}
