package commands

import (
	"errors"
	"fmt"

	"dronedelivery/internal/core/domain/model/address"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

// ErrCreateOrderCommandIsNotConstructed is returned for a zero CreateOrderCommand.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand asks for a delivery from the account's home address to destination.
//
// Example:
//
//	dest, _ := address.NewAddress("200 Oak Ave", "Springfield", "IL", "62704")
//	cmd, err := NewCreateOrderCommand(accountID, dest)
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	accountID   int64
	destination address.Address

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the account id and destination.
func NewCreateOrderCommand(accountID int64, destination address.Address) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setDestination(destination),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) AccountID() int64 {
	return c.accountID
}

func (c CreateOrderCommand) Destination() address.Address {
	return c.destination
}

func (c *CreateOrderCommand) setAccountID(accountID int64) error {
	if accountID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"account id is invalid", fmt.Errorf("%d is not greater than 0", accountID))
	}

	c.accountID = accountID
	return nil
}

func (c *CreateOrderCommand) setDestination(destination address.Address) error {
	if err := destination.Validate(); err != nil {
		return err
	}

	c.destination = destination
	return nil
}
