package order

import (
	"errors"
	"fmt"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrIDAlreadyAssigned is returned when AttachID is called on an order
	// that already carries a store-assigned id.
	ErrIDAlreadyAssigned = errors.New("order id is already assigned")

	// ErrNumberAlreadyAssigned is returned when AssignNumber is called on an
	// order whose number is no longer the placeholder.
	ErrNumberAlreadyAssigned = errors.New("order number is already assigned")
)

// Order is the aggregate root of the parcel delivery workflow.
//
// Order follows these invariants:
//   - Recipient name and phone are always present
//   - Declared weight is strictly positive
//   - Pickup delivery always references a delivery point
//   - Price is computed once, at creation, and never recomputed
//   - The store-assigned id and the derived order number are each assigned
//     exactly once
//
// The struct uses private fields so state only changes through validated
// methods. Status transitions are unconstrained (the taxonomy is
// site-configurable) but always stamp the last-modified time.
type Order struct {
	id     int64
	number string

	userID          *int64
	recipientName   string
	recipientPhone  string
	deliveryAddress string
	deliveryType    DeliveryType
	pickupPointID   *int64
	deliveryPointID *int64
	comment         string

	weight     kernel.Weight
	dimensions *kernel.Dimensions
	price      float64

	status    Status
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrderParams carries the attributes of a not-yet-persisted order.
// Optional attributes are pointers or zero values.
type NewOrderParams struct {
	UserID          *int64
	RecipientName   string
	RecipientPhone  string
	DeliveryAddress string
	DeliveryType    DeliveryType
	PickupPointID   *int64
	DeliveryPointID *int64
	Comment         string
	Weight          kernel.Weight
	Dimensions      *kernel.Dimensions
	Price           float64
}

// NewOrder creates a new Order awaiting persistence. The order starts in
// StatusProcessing with the placeholder number and no id; the store assigns
// the id on insert, after which the number is derived and assigned.
//
// The price is supplied by the caller (computed by the pricing service from
// the same weight and dimensions) and is fixed for the order's lifetime.
func NewOrder(params NewOrderParams) (*Order, error) {
	now := time.Now().UTC()

	order := &Order{
		number:          NumberPlaceholder,
		userID:          params.UserID,
		deliveryAddress: params.DeliveryAddress,
		comment:         params.Comment,
		status:          StatusProcessing,
		createdAt:       now,
		updatedAt:       now,
		isConstructed:   true,
	}

	if err := errors.Join(
		order.setRecipientName(params.RecipientName),
		order.setRecipientPhone(params.RecipientPhone),
		order.setDeliveryType(params.DeliveryType, params.PickupPointID, params.DeliveryPointID),
		order.setWeight(params.Weight),
		order.setDimensions(params.Dimensions),
		order.setPrice(params.Price),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrderParams carries the full persisted state of an order.
type RestoreOrderParams struct {
	ID        int64
	Number    string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time

	NewOrderParams
}

// RestoreOrder reconstructs an Order from persistence. It applies the same
// attribute validation as NewOrder plus identity checks, ensuring corrupt
// rows surface as errors instead of invalid aggregates.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	order, err := NewOrder(params.NewOrderParams)
	if err != nil {
		return nil, err
	}

	if params.ID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not a positive id", params.ID))
	}
	if params.Number == "" {
		return nil, errs.NewValueIsRequiredError("order_number")
	}
	if err = params.Status.Validate(); err != nil {
		return nil, err
	}

	order.id = params.ID
	order.number = params.Number
	order.status = params.Status
	order.createdAt = params.CreatedAt
	order.updatedAt = params.UpdatedAt

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the store-assigned id, or 0 while the order is unpersisted.
func (o *Order) ID() int64 { return o.id }

// Number returns the human-facing order number. Before AssignNumber it is
// the NumberPlaceholder value.
func (o *Order) Number() string { return o.number }

// UserID returns the owning user's id, if the order was placed by a
// registered user.
func (o *Order) UserID() *int64 { return o.userID }

// RecipientName returns the recipient's name.
func (o *Order) RecipientName() string { return o.recipientName }

// RecipientPhone returns the recipient's phone.
func (o *Order) RecipientPhone() string { return o.recipientPhone }

// DeliveryAddress returns the free-text delivery address.
func (o *Order) DeliveryAddress() string { return o.deliveryAddress }

// DeliveryType returns how the parcel reaches the recipient.
func (o *Order) DeliveryType() DeliveryType { return o.deliveryType }

// PickupPointID returns the drop-off point reference, if any.
func (o *Order) PickupPointID() *int64 { return o.pickupPointID }

// DeliveryPointID returns the pickup-point reference the recipient collects
// from. Mandatory when DeliveryType is DeliveryTypePickup.
func (o *Order) DeliveryPointID() *int64 { return o.deliveryPointID }

// Comment returns the free-text comment.
func (o *Order) Comment() string { return o.comment }

// Weight returns the declared weight.
func (o *Order) Weight() kernel.Weight { return o.weight }

// Dimensions returns the declared dimensions, or nil when none were supplied.
func (o *Order) Dimensions() *kernel.Dimensions { return o.dimensions }

// Price returns the price fixed at creation time.
func (o *Order) Price() float64 { return o.price }

// Status returns the current status key.
func (o *Order) Status() Status { return o.status }

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the last-modified timestamp.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// AttachID records the store-assigned id after the insert. It may be called
// exactly once: ids are immutable once assigned.
func (o *Order) AttachID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not a positive id", id))
	}
	if o.id != 0 {
		return ErrIDAlreadyAssigned
	}

	o.id = id
	return nil
}

// AssignNumber replaces the placeholder with the derived order number. It may
// be called exactly once: order numbers are never reassigned or reused.
func (o *Order) AssignNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("order_number")
	}
	if o.number != NumberPlaceholder {
		return ErrNumberAlreadyAssigned
	}

	o.number = number
	return nil
}

// ChangeStatus moves the order to the given status key and stamps the
// last-modified time. Any non-empty key is accepted, including the current
// one; the timestamp is updated either way.
func (o *Order) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	o.updatedAt = time.Now().UTC()
	return nil
}

func (o *Order) setRecipientName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("recipient_name")
	}
	o.recipientName = name
	return nil
}

func (o *Order) setRecipientPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("recipient_phone")
	}
	o.recipientPhone = phone
	return nil
}

func (o *Order) setDeliveryType(deliveryType DeliveryType, pickupPointID, deliveryPointID *int64) error {
	if err := deliveryType.Validate(); err != nil {
		return err
	}
	if deliveryType == DeliveryTypePickup && deliveryPointID == nil {
		return errs.NewValueIsRequiredError("delivery_point_id")
	}

	o.deliveryType = deliveryType
	o.pickupPointID = pickupPointID
	o.deliveryPointID = deliveryPointID
	return nil
}

func (o *Order) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	o.weight = weight
	return nil
}

func (o *Order) setDimensions(dims *kernel.Dimensions) error {
	if dims == nil {
		return nil
	}
	if err := dims.Validate(); err != nil {
		return err
	}
	o.dimensions = dims
	return nil
}

func (o *Order) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is not greater than 0", price))
	}
	o.price = price
	return nil
}
