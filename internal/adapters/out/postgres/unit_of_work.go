// Package postgres provides the GORM-based Unit of Work, schema migrations and the
// connection helpers for the order store.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, orderrepo.WithMaxAttempts(5))
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if _, err := uow.OrderRepository().Insert(ctx, draft); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Repositories obtained before Begin use the plain connection and run each statement
// on its own.
package postgres

import (
	"context"

	"dronedelivery/internal/adapters/out/postgres/accountrepo"
	"dronedelivery/internal/adapters/out/postgres/addressrepo"
	"dronedelivery/internal/adapters/out/postgres/orderrepo"
	"dronedelivery/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM connection pool.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	orderOpts []orderrepo.Option
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// orderOpts configure every order repository handed out, e.g. the package code retry bound.
func NewGormUnitOfWorkFactory(db *gorm.DB, orderOpts ...orderrepo.Option) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, orderOpts: orderOpts}
}

// Create produces a new UnitOfWork with no open transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:        f.db,
		orderOpts: f.orderOpts,
	}
}

// GormUnitOfWork coordinates one database transaction across the order, address and
// account repositories.
type GormUnitOfWork struct {
	db        *gorm.DB
	tx        *gorm.DB
	orderOpts []orderrepo.Option
}

// Begin initiates a new database transaction for the unit of work.
// Calling Begin again while a transaction is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit finalizes the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is open, which makes a deferred
// Rollback after a successful Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns an order repository bound to the current transaction, if any.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow.orderOpts...)
}

// AddressRepository returns an address repository bound to the current transaction, if any.
func (uow *GormUnitOfWork) AddressRepository() ports.AddressRepository {
	return addressrepo.NewGormAddressRepository(uow.conn())
}

// AccountRepository returns an account repository bound to the current transaction, if any.
func (uow *GormUnitOfWork) AccountRepository() ports.AccountRepository {
	return accountrepo.NewGormAccountRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
