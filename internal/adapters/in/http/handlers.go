package http

import (
	"context"

	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/application/usecases/queries"
)

type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error)
	}

	UpdateOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) error
	}

	RegisterAccountHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterAccountCommand) (int64, error)
	}

	FindOrderHandler interface {
		Handle(ctx context.Context, query queries.FindOrderQuery) (queries.OrderView, error)
	}

	TrackPackageHandler interface {
		Handle(ctx context.Context, query queries.FindOrderByPackageCodeQuery) (queries.OrderView, error)
	}

	ListAccountOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListAccountOrdersQuery) ([]queries.OrderView, error)
	}

	GetActiveOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetActiveOrdersQuery) ([]queries.OrderView, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateOrder       CreateOrderHandler
	UpdateOrderStatus UpdateOrderStatusHandler
	RegisterAccount   RegisterAccountHandler
	FindOrder         FindOrderHandler
	TrackPackage      TrackPackageHandler
	ListAccountOrders ListAccountOrdersHandler
	GetActiveOrders   GetActiveOrdersHandler
}
