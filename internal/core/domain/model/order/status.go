package order

import "parcelhub/internal/pkg/errs"

// Status is the lifecycle state key of an order.
//
// The set of statuses is open-ended and site-configurable: administrators can
// add new keys to the taxonomy at runtime, so Status deliberately does not
// implement a closed state machine. Any recognized key may follow any other;
// the only structural requirement is that a key is non-empty.
type Status string

// Well-known status keys seeded into the taxonomy. The site may define more.
const (
	// StatusProcessing is the initial status of every new order.
	StatusProcessing Status = "processing"

	// StatusCourier means the parcel has been handed to a courier.
	StatusCourier Status = "courier"

	// StatusTransit means the parcel is on its way.
	StatusTransit Status = "transit"

	// StatusReady means the parcel is ready for pickup at a delivery point.
	StatusReady Status = "ready"

	// StatusDelivered means the parcel has been handed to the recipient.
	StatusDelivered Status = "delivered"
)

// Validate checks that the status key is usable.
// Since the taxonomy is open-ended, only emptiness is rejected here; whether
// a key is known to the site is a presentation concern.
func (s Status) Validate() error {
	if s == "" {
		return errs.NewValueIsRequiredError("status")
	}
	return nil
}

// String returns the status key.
func (s Status) String() string {
	return string(s)
}
