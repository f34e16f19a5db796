package ports

import (
	"context"
	"time"

	"dronedelivery/internal/core/domain/model/address"
)

// DeliveryEstimator is the external engine deciding where drones can deliver and when.
// Its policy is owned by the engine; the core only consumes these two answers.
type DeliveryEstimator interface {
	// IsServiceable reports whether a delivery to destination is possible at all.
	IsServiceable(ctx context.Context, destination address.Address) (bool, error)

	// EstimateDelivery computes the expected delivery time for a package leaving origin at shipDate.
	EstimateDelivery(ctx context.Context, shipDate time.Time, origin, destination address.Address) (time.Time, error)
}
