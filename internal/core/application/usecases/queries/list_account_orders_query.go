package queries

import (
	"errors"
	"fmt"

	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

// ErrListAccountOrdersQueryIsNotConstructed is returned for a zero ListAccountOrdersQuery.
var ErrListAccountOrdersQueryIsNotConstructed = errors.New(
	"ListAccountOrdersQuery must be created via NewListAccountOrdersQuery constructor",
)

// ListAccountOrdersQuery lists every order placed by one account.
type ListAccountOrdersQuery struct {
	accountID int64

	guard guard.ConstructorGuard
}

// NewListAccountOrdersQuery validates that accountID is positive.
func NewListAccountOrdersQuery(accountID int64) (ListAccountOrdersQuery, error) {
	if accountID <= 0 {
		return ListAccountOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"account id is invalid", fmt.Errorf("%d is not greater than 0", accountID))
	}
	return ListAccountOrdersQuery{accountID: accountID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListAccountOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListAccountOrdersQueryIsNotConstructed)
}

func (q ListAccountOrdersQuery) AccountID() int64 {
	return q.accountID
}
