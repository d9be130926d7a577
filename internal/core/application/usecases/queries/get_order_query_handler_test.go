package queries_test

import (
	"context"
	"testing"
	"time"

	"parcelhub/internal/adapters/out/postgres/orderrepo"
	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/order"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrderQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.handler = queries.NewGetOrderQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, mockAggregateTracker{})
}

func (suite *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders RESTART IDENTITY").Error)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ExistingOrder_ReturnsFullResponse() {
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	length, width, height := 50.0, 40.0, 30.0
	weight, err := kernel.NewWeight(8)
	suite.Require().NoError(err)
	dims, err := kernel.NewDimensions(length, width, height)
	suite.Require().NoError(err)

	aggregate, err := order.RestoreOrder(order.RestoreOrderParams{
		ID:        7,
		Number:    "BB-007",
		Status:    order.StatusTransit,
		CreatedAt: createdAt,
		UpdatedAt: createdAt.Add(time.Hour),
		NewOrderParams: order.NewOrderParams{
			RecipientName:  "Anna K",
			RecipientPhone: "+7 900 000 00 00",
			DeliveryType:   order.DeliveryTypeHome,
			Comment:        "leave at the door",
			Weight:         weight,
			Dimensions:     &dims,
			Price:          2500,
		},
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), aggregate))

	query, err := queries.NewGetOrderQuery(7)
	suite.Require().NoError(err)

	resp, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(int64(7), resp.ID)
	suite.Equal("BB-007", resp.Number)
	suite.Equal("transit", resp.Status)
	suite.Equal("leave at the door", resp.Comment)
	suite.InDelta(8, resp.Weight, 1e-9)
	suite.Require().NotNil(resp.Length)
	suite.InDelta(length, *resp.Length, 1e-9)
	suite.InDelta(2500, resp.Price, 1e-9)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_NonExistentOrder_ReturnsNotFoundError() {
	query, err := queries.NewGetOrderQuery(424242)
	suite.Require().NoError(err)

	resp, err := suite.handler.Handle(context.Background(), query)

	suite.Nil(resp)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderQuery{}

	resp, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(resp)
}

func TestNewGetOrderQuery_RejectsNonPositiveIDs(t *testing.T) {
	_, err := queries.NewGetOrderQuery(0)
	require.Error(t, err)

	_, err = queries.NewGetOrderQuery(-7)
	require.Error(t, err)
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}
