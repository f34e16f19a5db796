package queries

import (
	"context"
)

// ListAccountOrdersQueryHandler lists an account's orders in insertion order.
// An account without orders yields an empty, non-nil slice.
type ListAccountOrdersQueryHandler struct {
	orders AccountOrdersLister
}

// NewListAccountOrdersQueryHandler creates a handler reading from orders.
func NewListAccountOrdersQueryHandler(orders AccountOrdersLister) ListAccountOrdersQueryHandler {
	return ListAccountOrdersQueryHandler{orders: orders}
}

// Handle returns the account's orders ordered by id. An unknown account yields an empty list.
func (h ListAccountOrdersQueryHandler) Handle(ctx context.Context, query ListAccountOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.ListByAccountID(ctx, query.AccountID())
	if err != nil {
		return nil, err
	}

	return newOrderViews(orders), nil
}
