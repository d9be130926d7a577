package commands_test

import (
	"testing"
	"time"

	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/order"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedOrder(t *testing.T, id int64, status order.Status) *order.Order {
	t.Helper()

	weight, err := kernel.NewWeight(5)
	require.NoError(t, err)

	number, err := order.NumberFor(id)
	require.NoError(t, err)

	aggregate, err := order.RestoreOrder(order.RestoreOrderParams{
		ID:        id,
		Number:    number,
		Status:    status,
		CreatedAt: time.Now().UTC().Add(-time.Hour),
		UpdatedAt: time.Now().UTC().Add(-time.Hour),
		NewOrderParams: order.NewOrderParams{
			RecipientName:  "Anna K",
			RecipientPhone: "+7 900 000 00 00",
			DeliveryType:   order.DeliveryTypeHome,
			Weight:         weight,
			Price:          600,
		},
	})
	require.NoError(t, err)

	return aggregate
}

func TestChangeOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewChangeOrderStatusCommand(7, "courier")
	require.NoError(t, err)

	stored := storedOrder(t, 7, order.StatusProcessing)
	before := stored.UpdatedAt()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(7)).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusCourier, updated.Status())
	assert.True(t, updated.UpdatedAt().After(before))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_SameStatusStillStamps(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewChangeOrderStatusCommand(7, "processing")
	require.NoError(t, err)

	stored := storedOrder(t, 7, order.StatusProcessing)
	before := stored.UpdatedAt()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(7)).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusProcessing, updated.Status())
	assert.True(t, updated.UpdatedAt().After(before))
}

func TestChangeOrderStatusCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewChangeOrderStatusCommand(404, "courier")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(404)).
			Return(nil, errs.NewObjectNotFoundError("order", int64(404))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ChangeOrderStatusCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
}
