package cmd

import (
	"restaurant/internal/adapters/in/console"
	"restaurant/internal/adapters/out/filestore"
	"restaurant/internal/adapters/out/filestore/orderrepo"
	"restaurant/internal/core/application/reports"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"

	"github.com/labstack/gommon/log"
)

type CompositionRoot struct {
	config     Config
	logger     *log.Logger
	disk       *filestore.DiskStorage
	uowFactory *filestore.FileUnitOfWorkFactory
}

func NewCompositionRoot(config Config, logger *log.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		logger:     logger,
		disk:       filestore.NewDiskStorage(logger),
		uowFactory: filestore.NewFileUnitOfWorkFactory(config.PendingStorePath, config.FulfilledStorePath, logger),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.PendingOrderUoWFactory = FuncPendingOrderUoWFactory(func() commands.PendingOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateFulfillOrderCommandHandler() commands.FulfillOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewFulfillOrderCommandHandler(f, services.NewFulfiller())
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	repo := orderrepo.NewJSONOrderRepository(c.disk, c.config.PendingStorePath, order.Pending)
	return queries.NewGetPendingOrdersQueryHandler(repo)
}

func (c *CompositionRoot) CreateConsole() *console.Console {
	return console.NewConsole(
		c.CreateCreateOrderCommandHandler(),
		c.CreateFulfillOrderCommandHandler(),
		c.CreateGetPendingOrdersQueryHandler(),
		services.NewFulfiller(),
		reports.NewRenderer(),
		c.logger,
	)
}

type FuncPendingOrderUoWFactory func() commands.PendingOrderUoW

func (f FuncPendingOrderUoWFactory) Create() commands.PendingOrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
