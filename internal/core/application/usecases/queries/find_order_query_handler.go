package queries

import (
	"context"
)

// FindOrderQueryHandler resolves one order into its caller-facing view.
//
// Example:
//
//	query, _ := NewFindOrderQuery(42)
//	view, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no such order
//	}
type FindOrderQueryHandler struct {
	orders OrderByIDFinder
}

// NewFindOrderQueryHandler creates a handler reading from orders.
func NewFindOrderQueryHandler(orders OrderByIDFinder) FindOrderQueryHandler {
	return FindOrderQueryHandler{orders: orders}
}

// Handle returns errs.ObjectNotFoundError when the order does not exist.
func (h FindOrderQueryHandler) Handle(ctx context.Context, query FindOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	o, err := h.orders.FindByOrderID(ctx, query.OrderID())
	if err != nil {
		return OrderView{}, err
	}

	return newOrderView(o), nil
}
