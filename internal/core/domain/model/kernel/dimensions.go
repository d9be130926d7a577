package kernel

import (
	"errors"
	"fmt"

	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

// ErrDimensionsAreNotConstructed is returned when validating zero-value
// Dimensions. Dimensions must be created via the NewDimensions constructor.
var ErrDimensionsAreNotConstructed = errs.NewValueIsRequiredError(
	"dimensions must be created via NewDimensions constructor")

// Dimensions holds the length, width and height of a parcel in centimeters.
// It is an immutable value object. Dimensions are optional on an order, but
// when supplied all three sides must be present and strictly positive: a
// partial set of sides is not constructible and callers treat it as absent.
//
// Example:
//
//	dims, err := kernel.NewDimensions(50, 50, 50)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(dims.Volume()) // 125000
type Dimensions struct { //nolint:recvcheck //using for validation
	length float64
	width  float64
	height float64

	guard guard.ConstructorGuard
}

// NewDimensions creates Dimensions from three side lengths in centimeters.
// All sides must be strictly positive.
func NewDimensions(length, width, height float64) (Dimensions, error) {
	dims := Dimensions{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		dims.setLength(length),
		dims.setWidth(width),
		dims.setHeight(height),
	); err != nil {
		return Dimensions{}, err
	}

	return dims, nil
}

// Length returns the length in centimeters.
func (d Dimensions) Length() float64 {
	return d.length
}

// Width returns the width in centimeters.
func (d Dimensions) Width() float64 {
	return d.width
}

// Height returns the height in centimeters.
func (d Dimensions) Height() float64 {
	return d.height
}

// Volume returns the box volume in cubic centimeters.
func (d Dimensions) Volume() float64 {
	return d.length * d.width * d.height
}

// Validate ensures the Dimensions were created via NewDimensions.
func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsAreNotConstructed)
}

func (d *Dimensions) setLength(length float64) error {
	if length <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("length is invalid",
			fmt.Errorf("%v is not greater than 0", length))
	}
	d.length = length
	return nil
}

func (d *Dimensions) setWidth(width float64) error {
	if width <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("width is invalid",
			fmt.Errorf("%v is not greater than 0", width))
	}
	d.width = width
	return nil
}

func (d *Dimensions) setHeight(height float64) error {
	if height <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("height is invalid",
			fmt.Errorf("%v is not greater than 0", height))
	}
	d.height = height
	return nil
}
