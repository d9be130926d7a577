package order

import (
	"fmt"

	"parcelhub/internal/pkg/errs"
)

// NumberPrefix is the fixed prefix of every human-facing order number.
const NumberPrefix = "BB-"

// NumberPlaceholder is the transient order-number value persisted with a new
// row before the store-assigned id is known. It never survives a successful
// creation: the workflow replaces it in the same transaction.
const NumberPlaceholder = "TEMP"

// numberMinWidth is the minimum digit width of the numeric part. Ids with
// more digits are rendered in full; padding is a minimum, not a cap.
const numberMinWidth = 3

// NumberFor derives the human-facing order number from a store-assigned id.
// The mapping is injective over positive ids: NumberFor(7) is "BB-007",
// NumberFor(1234) is "BB-1234". A number is derived exactly once per order
// and never reused.
func NumberFor(id int64) (string, error) {
	if id <= 0 {
		return "", errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not a positive id", id))
	}

	return fmt.Sprintf("%s%0*d", NumberPrefix, numberMinWidth, id), nil
}
