package cmd

import (
	"parcelhub/internal/adapters/out/postgres"
	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/domain/services"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB      *gorm.DB
	redisClient *redis.Client
	uowFactory  postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, redisClient *redis.Client) CompositionRoot {
	return CompositionRoot{
		gormDB:      gormDB,
		redisClient: redisClient,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, services.NewPricer())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPickupPointsQueryHandler() queries.ListPickupPointsQueryHandler {
	return queries.NewListPickupPointsQueryHandler(c.gormDB, c.redisClient)
}

func (c *CompositionRoot) CreateListOrderStatusesQueryHandler() queries.ListOrderStatusesQueryHandler {
	return queries.NewListOrderStatusesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersSummaryQueryHandler() queries.GetOrdersSummaryQueryHandler {
	return queries.NewGetOrdersSummaryQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
