// Package order provides the Order aggregate and its lifecycle state
// machine.
//
// The package includes:
//   - Order: the aggregate root owning a customer, an ordered item list,
//     and the current lifecycle status
//   - Status: the state machine New -> Processing -> Shipped -> Delivered
//
// Key business rules:
//   - Orders are created in status New with an empty item list
//   - The total price is the sum of item prices, recomputed on every call
//   - Advance announces the state the order is in when the call returns:
//     the first call announces New without transitioning, every later call
//     moves one step and announces the entered state
//   - Delivered is terminal; further advances keep announcing Delivered
//
// Items should be appended before the lifecycle workflow starts. This is a
// documented precondition, not an enforced invariant.
package order
