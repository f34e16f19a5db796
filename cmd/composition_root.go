package cmd

import (
	"log/slog"
	"time"

	httpin "dronedelivery/internal/adapters/in/http"
	"dronedelivery/internal/adapters/out/postgres"
	"dronedelivery/internal/adapters/out/postgres/orderrepo"
	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/application/usecases/queries"
	"dronedelivery/internal/core/ports"
	"dronedelivery/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires storage, the estimator and the use cases into the HTTP server and jobs.
type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	estimator  ports.DeliveryEstimator
	now        func() time.Time
	logger     *slog.Logger
}

// NewCompositionRoot builds the dependency graph around an open database.
func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	estimator ports.DeliveryEstimator,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, orderrepo.WithMaxAttempts(cfg.PackageCodeMaxAttempts)),
		estimator:  estimator,
		now:        func() time.Time { return time.Now().UTC() },
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	var f commands.PlaceOrderUoWFactory = FuncPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewCreateOrderCommandHandler(f, c.estimator, c.now)
	return &h
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() *commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewUpdateOrderStatusCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateRegisterAccountCommandHandler() *commands.RegisterAccountCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewRegisterAccountCommandHandler(f)
	return &h
}

func (c *CompositionRoot) orderReader() *orderrepo.GormOrderRepository {
	return orderrepo.NewGormOrderRepository(c.gormDB)
}

func (c *CompositionRoot) CreateFindOrderQueryHandler() queries.FindOrderQueryHandler {
	return queries.NewFindOrderQueryHandler(c.orderReader())
}

func (c *CompositionRoot) CreateFindOrderByPackageCodeQueryHandler() queries.FindOrderByPackageCodeQueryHandler {
	return queries.NewFindOrderByPackageCodeQueryHandler(c.orderReader())
}

func (c *CompositionRoot) CreateListAccountOrdersQueryHandler() queries.ListAccountOrdersQueryHandler {
	return queries.NewListAccountOrdersQueryHandler(c.orderReader())
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.orderReader())
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
		RegisterAccount:   c.CreateRegisterAccountCommandHandler(),
		FindOrder:         c.CreateFindOrderQueryHandler(),
		TrackPackage:      c.CreateFindOrderByPackageCodeQueryHandler(),
		ListAccountOrders: c.CreateListAccountOrdersQueryHandler(),
		GetActiveOrders:   c.CreateGetActiveOrdersQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetActiveOrdersQueryHandler(), c.cfg.JobSchedules(), c.now, c.logger)
}

type FuncPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f FuncPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}
