// Package queries contains the read-only order service operations. Handlers depend on
// the narrow slice of ports.OrderRepository they use and return OrderView values.
package queries

import (
	"context"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
)

type (
	// OrderByIDFinder resolves an order by its numeric id.
	OrderByIDFinder interface {
		FindByOrderID(ctx context.Context, orderID int64) (*order.Order, error)
	}

	// OrderByPackageCodeFinder resolves an order by its tracking code.
	OrderByPackageCodeFinder interface {
		FindByPackageCode(ctx context.Context, code kernel.PackageCode) (*order.Order, error)
	}

	// AccountOrdersLister lists the orders of one account.
	AccountOrdersLister interface {
		ListByAccountID(ctx context.Context, accountID int64) ([]*order.Order, error)
	}

	// ActiveOrdersLister lists every order not yet delivered.
	ActiveOrdersLister interface {
		ListActive(ctx context.Context) ([]*order.Order, error)
	}
)
