// Package guard provides ConstructorGuard, a marker embedded in domain objects,
// commands and queries so that zero values created without their constructor
// can be detected and rejected.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether its owner was built by a constructor.
// The zero value reports "not constructed".
//
// Example:
//
//	type FindOrderQuery struct {
//	    orderID int64
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewFindOrderQuery(orderID int64) (FindOrderQuery, error) {
//	    return FindOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (q FindOrderQuery) Validate() error {
//	    return q.guard.Validate(ErrFindOrderQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
