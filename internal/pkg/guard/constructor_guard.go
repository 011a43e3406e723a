// Package guard lets value objects, commands and queries detect that they were
// created as zero values instead of through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate on a zero-value guard when the
// caller passes no error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in a struct and set by its constructor.
//
// Example:
//
//	type Weight struct {
//	    kg    float64
//	    guard guard.ConstructorGuard
//	}
//
//	func NewWeight(kg float64) (Weight, error) {
//	    if kg <= 0 {
//	        return Weight{}, errors.New("weight must be positive")
//	    }
//	    return Weight{kg: kg, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (w Weight) Validate() error {
//	    return w.guard.Validate(ErrWeightIsNotConstructed)
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
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
