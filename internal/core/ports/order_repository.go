// Package ports defines the contracts between the order core and its infrastructure:
// repositories, the unit of work and the external delivery estimator.
package ports

import (
	"context"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Lookups return errs.ObjectNotFoundError when nothing matches and errs.StorageFailureError
// when the store itself fails, so callers can tell "no such order" from "lookup failed".
type OrderRepository interface {
	// FindByOrderID loads an order with its origin and destination addresses.
	FindByOrderID(ctx context.Context, orderID int64) (*order.Order, error)

	// FindByPackageCode loads an order by its tracking code.
	FindByPackageCode(ctx context.Context, code kernel.PackageCode) (*order.Order, error)

	// ListByAccountID returns every order owned by the account in insertion order.
	// The slice is empty, never nil, when the account has no orders.
	ListByAccountID(ctx context.Context, accountID int64) ([]*order.Order, error)

	// ListActive returns every order whose status is not Delivered.
	ListActive(ctx context.Context) ([]*order.Order, error)

	// Insert persists a draft atomically: addresses first, then the order row.
	// It generates a unique package code, retrying on collision, and returns the new order id.
	// On success the draft is updated with its id, package code and address ids.
	//
	// Example:
	//   id, err := repo.Insert(ctx, draft)
	//   if errors.Is(err, errs.ErrStorageFailure) {
	//       // nothing visible was written
	//   }
	Insert(ctx context.Context, draft *order.Order) (int64, error)

	// UpdateStatus writes the status unconditionally. Transition rules belong to the caller.
	UpdateStatus(ctx context.Context, orderID int64, status order.Status) error
}
