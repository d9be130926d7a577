package order

import (
	"fmt"

	"parcelhub/internal/pkg/errs"
)

// DeliveryType says how a parcel reaches its recipient.
type DeliveryType string

const (
	// DeliveryTypeHome is door-to-door delivery to the recipient's address.
	DeliveryTypeHome DeliveryType = "home"

	// DeliveryTypePickup is delivery to a pickup point chosen by the
	// recipient. Orders of this type must reference a delivery point.
	DeliveryTypePickup DeliveryType = "pickup"
)

// Validate checks that the delivery type is one of the supported kinds.
func (t DeliveryType) Validate() error {
	if t != DeliveryTypeHome && t != DeliveryTypePickup {
		return errs.NewValueIsInvalidErrorWithCause("delivery_type",
			fmt.Errorf("%q is not a supported delivery type", string(t)))
	}
	return nil
}

// String returns the delivery type key.
func (t DeliveryType) String() string {
	return string(t)
}
