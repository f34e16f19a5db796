package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/account"
	"dronedelivery/internal/core/domain/model/address"
	"dronedelivery/internal/pkg/guard"
)

// ErrRegisterAccountCommandIsNotConstructed is returned for a zero RegisterAccountCommand.
var ErrRegisterAccountCommandIsNotConstructed = errors.New(
	"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
)

// RegisterAccountCommand signs up a customer with a home address.
type RegisterAccountCommand struct {
	firstName string
	lastName  string
	email     string
	home      address.Address

	guard guard.ConstructorGuard
}

// NewRegisterAccountCommand applies the account rules up front so the handler
// never opens a transaction for a request that cannot succeed.
func NewRegisterAccountCommand(firstName, lastName, email string, home address.Address) (RegisterAccountCommand, error) {
	draft, err := account.NewAccount(firstName, lastName, email, home)
	if err != nil {
		return RegisterAccountCommand{}, err
	}

	return RegisterAccountCommand{
		firstName: draft.FirstName(),
		lastName:  draft.LastName(),
		email:     draft.Email(),
		home:      draft.HomeAddress(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

func (c RegisterAccountCommand) FirstName() string {
	return c.firstName
}

func (c RegisterAccountCommand) LastName() string {
	return c.lastName
}

func (c RegisterAccountCommand) Email() string {
	return c.email
}

func (c RegisterAccountCommand) Home() address.Address {
	return c.home
}
