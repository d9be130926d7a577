package http_test

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	adapter "parcelhub/internal/adapters/in/http"
	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/order"
	"parcelhub/internal/core/domain/services"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

// newTestServer wires a server whose write side runs against the given
// unit of work factory. Read-side handlers stay zero valued because the
// routed tests never reach them.
func newTestServer(factory commands.OrderUoWFactory) *echo.Echo {
	server := adapter.NewServer(
		commands.NewCreateOrderCommandHandler(factory, services.NewPricer()),
		commands.NewChangeOrderStatusCommandHandler(factory),
		queries.GetOrderQueryHandler{},
		queries.ListOrdersQueryHandler{},
		queries.ListPickupPointsQueryHandler{},
		queries.ListOrderStatusesQueryHandler{},
		queries.GetOrdersSummaryQueryHandler{},
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e
}

func storedOrder(t *testing.T, id int64, status order.Status) *order.Order {
	t.Helper()

	weight, err := kernel.NewWeight(5)
	require.NoError(t, err)

	createdAt := time.Now().UTC().Add(-time.Hour)
	aggregate, err := order.RestoreOrder(order.RestoreOrderParams{
		ID:        id,
		Number:    "BB-007",
		Status:    status,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
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

func performRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateOrder_Success(t *testing.T) {
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) {
			aggregate := args.Get(1).(*order.Order)
			_ = aggregate.AttachID(1)
		}).Return(nil).Once()
	repo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	e := newTestServer(factory)
	rec := performRequest(e, nethttp.MethodPost, "/api/v1/orders", `{
		"recipient_name": "Anna K",
		"recipient_phone": "+7 900 000 00 00",
		"delivery_address": "Lenina 1",
		"delivery_type": "home",
		"weight": 5
	}`)

	require.Equal(t, nethttp.StatusCreated, rec.Code)

	var resp queries.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "BB-001", resp.Number)
	assert.Equal(t, "processing", resp.Status)
	assert.InDelta(t, 600, resp.Price, 1e-9)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrder_MalformedBody_ReturnsBadRequest(t *testing.T) {
	factory := new(MockOrderUoWFactory)

	e := newTestServer(factory)
	rec := performRequest(e, nethttp.MethodPost, "/api/v1/orders", `{"weight": `)

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrder_MissingRecipient_ReturnsBadRequest(t *testing.T) {
	factory := new(MockOrderUoWFactory)

	e := newTestServer(factory)
	rec := performRequest(e, nethttp.MethodPost, "/api/v1/orders", `{
		"recipient_phone": "+7 900 000 00 00",
		"weight": 5
	}`)

	require.Equal(t, nethttp.StatusBadRequest, rec.Code)

	var resp adapter.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "recipient_name")
	factory.AssertNotCalled(t, "Create")
}

func TestChangeOrderStatus_Success(t *testing.T) {
	aggregate := storedOrder(t, 7, order.StatusProcessing)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", mock.Anything, int64(7)).Return(aggregate, nil).Once()
	repo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	e := newTestServer(factory)
	rec := performRequest(e, nethttp.MethodPut, "/api/v1/orders/7/status", `{"status": "courier"}`)

	require.Equal(t, nethttp.StatusOK, rec.Code)

	var resp queries.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "courier", resp.Status)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatus_UnknownOrder_ReturnsNotFound(t *testing.T) {
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", mock.Anything, int64(424242)).
		Return(nil, errs.NewObjectNotFoundError("order", int64(424242))).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	e := newTestServer(factory)
	rec := performRequest(e, nethttp.MethodPut, "/api/v1/orders/424242/status", `{"status": "courier"}`)

	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
	repo.AssertExpectations(t)
}

func TestChangeOrderStatus_NonNumericID_ReturnsBadRequest(t *testing.T) {
	factory := new(MockOrderUoWFactory)

	e := newTestServer(factory)
	rec := performRequest(e, nethttp.MethodPut, "/api/v1/orders/abc/status", `{"status": "courier"}`)

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	factory.AssertNotCalled(t, "Create")
}

func TestChangeOrderStatus_EmptyStatus_ReturnsBadRequest(t *testing.T) {
	factory := new(MockOrderUoWFactory)

	e := newTestServer(factory)
	rec := performRequest(e, nethttp.MethodPut, "/api/v1/orders/7/status", `{"status": ""}`)

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	factory.AssertNotCalled(t, "Create")
}

func TestGetOrder_NonNumericID_ReturnsBadRequest(t *testing.T) {
	factory := new(MockOrderUoWFactory)

	e := newTestServer(factory)
	rec := performRequest(e, nethttp.MethodGet, "/api/v1/orders/abc", "")

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestListOrders_NonNumericUserID_ReturnsBadRequest(t *testing.T) {
	factory := new(MockOrderUoWFactory)

	e := newTestServer(factory)
	rec := performRequest(e, nethttp.MethodGet, "/api/v1/orders?user_id=abc", "")

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}
