package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/order"
	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a request to move an order to a new
// status. Any non-empty status key is accepted since the taxonomy is
// maintained by site administrators at runtime.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	status  order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand validates the order id and status key.
func NewChangeOrderStatusCommand(orderID int64, status string) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the numeric identifier of the order to transition.
func (c ChangeOrderStatusCommand) OrderID() int64 {
	return c.orderID
}

// Status returns the target status key.
func (c ChangeOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("order_id")
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setStatus(status string) error {
	parsed := order.Status(status)
	if err := parsed.Validate(); err != nil {
		return err
	}

	c.status = parsed
	return nil
}
