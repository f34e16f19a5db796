// Package commands contains the order service operations that modify state.
// Every command follows the same pattern: constructor validation, reads and
// collaborator calls first, then writes inside a unit of work.
package commands

import (
	"context"

	"dronedelivery/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// AccountRepoFactory provides access to the account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// AddressRepoFactory provides access to the address repository within a transaction.
	AddressRepoFactory interface {
		AddressRepository() ports.AddressRepository
	}

	// OrderUoW manages transactions for order-only operations such as status changes.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PlaceOrderUoW reads the owning account and writes the order.
	//
	// Example:
	//   uow := factory.Create()
	//   acc, err := uow.AccountRepository().Get(ctx, accountID) // outside the transaction
	//   err = uow.Begin(ctx)
	//   defer func() { _ = uow.Rollback(ctx) }()
	//   id, err := uow.OrderRepository().Insert(ctx, draft)
	//   err = uow.Commit(ctx)
	PlaceOrderUoW interface {
		TxManager
		AccountRepoFactory
		OrderRepoFactory
	}

	// PlaceOrderUoWFactory creates new place-order unit of work instances.
	PlaceOrderUoWFactory interface {
		Create() PlaceOrderUoW
	}

	// AccountUoW writes a home address and the account that owns it.
	AccountUoW interface {
		TxManager
		AddressRepoFactory
		AccountRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}
)
