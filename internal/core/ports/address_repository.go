package ports

import (
	"context"

	"dronedelivery/internal/core/domain/model/address"
)

// AddressRepository stores postal addresses referenced by accounts and orders.
type AddressRepository interface {
	// Get resolves an address id.
	Get(ctx context.Context, id int64) (address.Address, error)

	// Insert persists a new address and returns its id.
	Insert(ctx context.Context, a address.Address) (int64, error)
}
