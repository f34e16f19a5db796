package ports

import (
	"context"

	"dronedelivery/internal/core/domain/model/account"
)

// AccountRepository stores customer accounts.
type AccountRepository interface {
	// Get loads an account with its home address.
	Get(ctx context.Context, id int64) (*account.Account, error)

	// Add persists a new account whose home address is already stored, and assigns its id.
	// A duplicate email is reported as errs.ConflictError.
	Add(ctx context.Context, acc *account.Account) error
}
