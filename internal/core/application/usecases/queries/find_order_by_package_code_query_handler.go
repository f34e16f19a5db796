package queries

import (
	"context"
)

// FindOrderByPackageCodeQueryHandler tracks a package by its code.
type FindOrderByPackageCodeQueryHandler struct {
	orders OrderByPackageCodeFinder
}

// NewFindOrderByPackageCodeQueryHandler creates a handler reading from orders.
func NewFindOrderByPackageCodeQueryHandler(orders OrderByPackageCodeFinder) FindOrderByPackageCodeQueryHandler {
	return FindOrderByPackageCodeQueryHandler{orders: orders}
}

// Handle returns ErrObjectNotFound when no order carries the code.
func (h FindOrderByPackageCodeQueryHandler) Handle(
	ctx context.Context,
	query FindOrderByPackageCodeQuery,
) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	o, err := h.orders.FindByPackageCode(ctx, query.PackageCode())
	if err != nil {
		return OrderView{}, err
	}

	return newOrderView(o), nil
}
