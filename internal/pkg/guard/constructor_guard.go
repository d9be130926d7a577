// Package guard provides a defensive construction check for value objects
// and commands. Embedding a ConstructorGuard in a struct makes zero-value
// instances detectable, so objects that bypass their constructor fail
// validation instead of silently carrying unvalidated state.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether its enclosing object was created through
// the designated constructor. The zero value is "not constructed".
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

// NewConstructorGuard returns a guard marking the enclosing object as
// properly constructed. Call it only from the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was created through its constructor,
// the supplied validationError otherwise. A nil validationError falls back
// to ErrDefaultConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
