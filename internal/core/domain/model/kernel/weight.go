package kernel

import (
	"fmt"

	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

// ErrWeightIsNotConstructed is returned when validating a zero-value Weight.
// Weights must be created via the NewWeight constructor.
var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError(
	"weight must be created via NewWeight constructor")

// Weight is the declared mass of a parcel in kilograms.
// It is an immutable value object; the declared weight must be strictly
// positive, an order cannot be created without one.
//
// Example:
//
//	w, err := kernel.NewWeight(4.5)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(w.Kg()) // 4.5
type Weight struct { //nolint:recvcheck //using for validation
	kg float64

	guard guard.ConstructorGuard
}

// NewWeight creates a Weight from a value in kilograms.
// Returns an error if kg is not strictly positive.
func NewWeight(kg float64) (Weight, error) {
	if kg <= 0 {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight is invalid",
			fmt.Errorf("%v is not greater than 0", kg))
	}

	return Weight{kg: kg, guard: guard.NewConstructorGuard()}, nil
}

// Kg returns the weight in kilograms.
func (w Weight) Kg() float64 {
	return w.kg
}

// IsEqual compares two weights by value.
func (w Weight) IsEqual(other Weight) bool {
	return w.kg == other.kg
}

// Validate ensures the Weight was created via NewWeight.
func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}
