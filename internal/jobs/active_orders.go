package jobs

import (
	"context"

	"dronedelivery/internal/core/application/usecases/queries"
)

// ActiveOrdersHandler is the query both jobs poll.
type ActiveOrdersHandler interface {
	Handle(ctx context.Context, query queries.GetActiveOrdersQuery) ([]queries.OrderView, error)
}
