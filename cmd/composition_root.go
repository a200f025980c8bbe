package cmd

import (
	"log/slog"

	httpin "shop/internal/adapters/in/http"
	"shop/internal/adapters/out/postgres"
	"shop/internal/adapters/out/redis/ordercache"
	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	orderCache *ordercache.RedisOrderCache
	logger     *slog.Logger
}

// NewCompositionRoot wires the application. redisClient may be nil, in which case
// order views are not cached.
func NewCompositionRoot(config Config, gormDB *gorm.DB, redisClient redis.Cmdable, logger *slog.Logger) CompositionRoot {
	root := CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
	if redisClient != nil {
		root.orderCache = ordercache.NewRedisOrderCache(redisClient, config.OrderCacheTTL)
	}
	return root
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.PlaceOrderUoWFactory = FuncPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})

	var invalidator commands.OrderCacheInvalidator
	if c.orderCache != nil {
		invalidator = c.orderCache
	}
	return commands.NewChangeOrderStatusCommandHandler(f, invalidator, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	var cache queries.OrderViewCache
	if c.orderCache != nil {
		cache = c.orderCache
	}
	return queries.NewGetOrderQueryHandler(c.gormDB, cache, c.logger)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCategoriesQueryHandler() queries.GetCategoriesQueryHandler {
	return queries.NewGetCategoriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCustomerQueryHandler() queries.CustomerQueryHandler {
	return queries.NewCustomerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLowStockProductsQueryHandler() queries.GetLowStockProductsQueryHandler {
	return queries.NewGetLowStockProductsQueryHandler(c.gormDB)
}

// CreateHTTPServer builds the inbound HTTP adapter with every use case attached.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	createOrder := c.CreateCreateOrderCommandHandler()
	changeStatus := c.CreateChangeOrderStatusCommandHandler()

	return httpin.NewServer(httpin.Handlers{
		CreateOrder:       &createOrder,
		ChangeOrderStatus: &changeStatus,
		GetOrder:          c.CreateGetOrderQueryHandler(),
		GetAllOrders:      c.CreateGetAllOrdersQueryHandler(),
		GetCustomerOrders: c.CreateGetCustomerOrdersQueryHandler(),
		CanTransition:     queries.NewCanTransitionQueryHandler(),
		GetProducts:       c.CreateGetProductsQueryHandler(),
		GetProduct:        c.CreateGetProductQueryHandler(),
		GetCategories:     c.CreateGetCategoriesQueryHandler(),
		Customers:         c.CreateCustomerQueryHandler(),
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetLowStockProductsQueryHandler(),
		c.config.LowStockThreshold,
		c.config.LowStockSchedule,
		c.logger,
	)
}

type FuncPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f FuncPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
