package commands

import (
	"context"

	"parcelhub/internal/core/domain/model/order"
	"parcelhub/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order intake.
// Prices the parcel, persists it, and assigns the public order number
// derived from the store-issued identifier, all within one transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, services.NewPricer())
//	cmd, _ := NewCreateOrderCommand(params)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("Order %s accepted", created.Number())
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	pricer     services.Pricer
}

// NewCreateOrderCommandHandler creates a handler for order intake.
// Requires an OrderUoWFactory for transactional persistence and a
// Pricer for the chargeable-weight tariff.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, pricer services.Pricer) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricer:     pricer,
	}
}

// Handle processes the order intake command.
//
// The order is inserted first with the number placeholder so the store can
// issue the identifier, then updated in the same transaction with the
// number derived from that identifier. Either both writes land or neither.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	price := h.pricer.Price(cmd.Weight(), cmd.Dimensions())

	aggregate, err := order.NewOrder(order.NewOrderParams{
		UserID:          cmd.UserID(),
		RecipientName:   cmd.RecipientName(),
		RecipientPhone:  cmd.RecipientPhone(),
		DeliveryAddress: cmd.DeliveryAddress(),
		DeliveryType:    cmd.DeliveryType(),
		PickupPointID:   cmd.PickupPointID(),
		DeliveryPointID: cmd.DeliveryPointID(),
		Comment:         cmd.Comment(),
		Weight:          cmd.Weight(),
		Dimensions:      cmd.Dimensions(),
		Price:           price,
	})
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	number, err := order.NumberFor(aggregate.ID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.AssignNumber(number); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
