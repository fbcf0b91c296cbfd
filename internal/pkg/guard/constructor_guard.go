package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes
// a nil validation error. It guarantees that a zero-value object always
// fails validation with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a domain object as having been created through its
// designated constructor. Embedding a ConstructorGuard in a struct makes the
// zero value of that struct detectable: a guard that was never produced by
// NewConstructorGuard fails validation.
//
// Example:
//
//	type Customer struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewCustomer(name string) (Customer, error) {
//	    if name == "" {
//	        return Customer{}, errors.New("name is required")
//	    }
//	    return Customer{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c Customer) Validate() error {
//	    return c.guard.Validate(ErrCustomerIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as
// properly constructed. Call it only from constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guard was produced by NewConstructorGuard.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
