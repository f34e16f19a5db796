package commands

import (
	"context"

	"dronedelivery/internal/core/domain/model/account"
)

// RegisterAccountCommandHandler stores the home address and the account together.
type RegisterAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewRegisterAccountCommandHandler creates a handler that stores the home address and the account in one unit of work.
func NewRegisterAccountCommandHandler(uowFactory AccountUoWFactory) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the new account id. A taken email surfaces as errs.ConflictError.
func (h *RegisterAccountCommandHandler) Handle(ctx context.Context, cmd RegisterAccountCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	homeID, err := uow.AddressRepository().Insert(ctx, cmd.Home())
	if err != nil {
		return 0, err
	}

	acc, err := account.NewAccount(cmd.FirstName(), cmd.LastName(), cmd.Email(), cmd.Home().WithID(homeID))
	if err != nil {
		return 0, err
	}

	if err = uow.AccountRepository().Add(ctx, acc); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return acc.ID(), nil
}
