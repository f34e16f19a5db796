package queries

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

// ErrFindOrderByPackageCodeQueryIsNotConstructed is returned for a zero FindOrderByPackageCodeQuery.
var ErrFindOrderByPackageCodeQueryIsNotConstructed = errors.New(
	"FindOrderByPackageCodeQuery must be created via NewFindOrderByPackageCodeQuery constructor",
)

// FindOrderByPackageCodeQuery backs the customer tracking page.
type FindOrderByPackageCodeQuery struct {
	code kernel.PackageCode

	guard guard.ConstructorGuard
}

// NewFindOrderByPackageCodeQuery parses the tracking code typed by a customer.
func NewFindOrderByPackageCodeQuery(code string) (FindOrderByPackageCodeQuery, error) {
	parsed, err := kernel.PackageCodeFromString(code)
	if err != nil {
		return FindOrderByPackageCodeQuery{}, err
	}
	return FindOrderByPackageCodeQuery{code: parsed, guard: guard.NewConstructorGuard()}, nil
}

func (q FindOrderByPackageCodeQuery) Validate() error {
	return q.guard.Validate(ErrFindOrderByPackageCodeQueryIsNotConstructed)
}

func (q FindOrderByPackageCodeQuery) PackageCode() kernel.PackageCode {
	return q.code
}
