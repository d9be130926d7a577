package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/order"
	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommandParams carries the raw intake fields for a new order.
// Dimensions are optional: they participate in pricing only when all
// three sides are supplied and positive, otherwise the parcel is priced
// by declared weight alone.
type CreateOrderCommandParams struct {
	UserID          *int64
	RecipientName   string
	RecipientPhone  string
	DeliveryAddress string
	DeliveryType    string
	PickupPointID   *int64
	DeliveryPointID *int64
	Comment         string
	WeightKg        float64
	LengthCm        *float64
	WidthCm         *float64
	HeightCm        *float64
}

// CreateOrderCommand represents a validated request to register a parcel.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(CreateOrderCommandParams{
//	    RecipientName:  "Anna K",
//	    RecipientPhone: "+7 900 000 00 00",
//	    WeightKg:       5,
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID          *int64
	recipientName   string
	recipientPhone  string
	deliveryAddress string
	deliveryType    order.DeliveryType
	pickupPointID   *int64
	deliveryPointID *int64
	comment         string
	weight          kernel.Weight
	dimensions      *kernel.Dimensions

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the raw intake fields and builds the
// command. Recipient name, phone and a positive weight are required.
// An empty delivery type defaults to home delivery.
func NewCreateOrderCommand(params CreateOrderCommandParams) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRecipientName(params.RecipientName),
		cmd.setRecipientPhone(params.RecipientPhone),
		cmd.setDeliveryType(params.DeliveryType),
		cmd.setWeight(params.WeightKg),
		cmd.setDimensions(params.LengthCm, params.WidthCm, params.HeightCm),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.userID = params.UserID
	cmd.deliveryAddress = params.DeliveryAddress
	cmd.pickupPointID = params.PickupPointID
	cmd.deliveryPointID = params.DeliveryPointID
	cmd.comment = params.Comment

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) UserID() *int64 {
	return c.userID
}

func (c CreateOrderCommand) RecipientName() string {
	return c.recipientName
}

func (c CreateOrderCommand) RecipientPhone() string {
	return c.recipientPhone
}

func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c CreateOrderCommand) DeliveryType() order.DeliveryType {
	return c.deliveryType
}

func (c CreateOrderCommand) PickupPointID() *int64 {
	return c.pickupPointID
}

func (c CreateOrderCommand) DeliveryPointID() *int64 {
	return c.deliveryPointID
}

func (c CreateOrderCommand) Comment() string {
	return c.comment
}

// Weight returns the declared parcel weight.
func (c CreateOrderCommand) Weight() kernel.Weight {
	return c.weight
}

// Dimensions returns the parcel dimensions, or nil when the intake did
// not supply a complete positive set of sides.
func (c CreateOrderCommand) Dimensions() *kernel.Dimensions {
	return c.dimensions
}

func (c *CreateOrderCommand) setRecipientName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("recipient_name")
	}

	c.recipientName = name
	return nil
}

func (c *CreateOrderCommand) setRecipientPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("recipient_phone")
	}

	c.recipientPhone = phone
	return nil
}

func (c *CreateOrderCommand) setDeliveryType(deliveryType string) error {
	if deliveryType == "" {
		c.deliveryType = order.DeliveryTypeHome
		return nil
	}

	parsed := order.DeliveryType(deliveryType)
	if err := parsed.Validate(); err != nil {
		return err
	}

	c.deliveryType = parsed
	return nil
}

func (c *CreateOrderCommand) setWeight(weightKg float64) error {
	weight, err := kernel.NewWeight(weightKg)
	if err != nil {
		return err
	}

	c.weight = weight
	return nil
}

// setDimensions treats a partial or non-positive set of sides as absent
// rather than rejecting the order.
func (c *CreateOrderCommand) setDimensions(length, width, height *float64) error {
	if length == nil || width == nil || height == nil {
		return nil
	}
	if *length <= 0 || *width <= 0 || *height <= 0 {
		return nil
	}

	dims, err := kernel.NewDimensions(*length, *width, *height)
	if err != nil {
		return err
	}

	c.dimensions = &dims
	return nil
}
