package queries

import (
	"context"
)

// GetActiveOrdersQueryHandler lists orders whose status is not Delivered, sorted by id.
type GetActiveOrdersQueryHandler struct {
	orders ActiveOrdersLister
}

// NewGetActiveOrdersQueryHandler creates a handler reading from orders.
func NewGetActiveOrdersQueryHandler(orders ActiveOrdersLister) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{orders: orders}
}

// Handle returns every order not yet Delivered, ordered by id.
func (h GetActiveOrdersQueryHandler) Handle(ctx context.Context, query GetActiveOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	return newOrderViews(orders), nil
}
