package queries

import (
	"errors"
	"fmt"

	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

// ErrFindOrderQueryIsNotConstructed is returned for a zero FindOrderQuery.
var ErrFindOrderQueryIsNotConstructed = errors.New(
	"FindOrderQuery must be created via NewFindOrderQuery constructor",
)

// FindOrderQuery looks up one order by id.
type FindOrderQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewFindOrderQuery validates that orderID is positive.
func NewFindOrderQuery(orderID int64) (FindOrderQuery, error) {
	if orderID <= 0 {
		return FindOrderQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"order id is invalid", fmt.Errorf("%d is not greater than 0", orderID))
	}
	return FindOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q FindOrderQuery) Validate() error {
	return q.guard.Validate(ErrFindOrderQueryIsNotConstructed)
}

func (q FindOrderQuery) OrderID() int64 {
	return q.orderID
}
