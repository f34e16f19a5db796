package orderrepo

import (
	"context"
	"errors"

	"dronedelivery/internal/adapters/out/postgres/addressrepo"
	"dronedelivery/internal/adapters/out/postgres/pgerr"
	"dronedelivery/internal/core/domain/model/address"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const packageCodeUniqueIndex = "idx_orders_package_code"

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db             *gorm.DB
	maxAttempts    int
	newPackageCode func() kernel.PackageCode
}

// NewGormOrderRepository creates a new GORM order repository. db may already be a
// transaction, in which case Insert runs inside a savepoint.
func NewGormOrderRepository(db *gorm.DB, opts ...Option) *GormOrderRepository {
	r := &GormOrderRepository{
		db:             db,
		maxAttempts:    DefaultMaxAttempts,
		newPackageCode: kernel.NewPackageCode,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FindByOrderID retrieves an order by its numeric id.
func (r *GormOrderRepository) FindByOrderID(ctx context.Context, orderID int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.withAddresses(ctx).First(&dto, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", orderID)
		}
		return nil, errs.NewStorageFailureErrorWithCause("find order", err)
	}

	return toDomain(dto)
}

// FindByPackageCode retrieves an order by its tracking code.
func (r *GormOrderRepository) FindByPackageCode(ctx context.Context, code kernel.PackageCode) (*order.Order, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withAddresses(ctx).First(&dto, "package_code = ?", code.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("package", code.String())
		}
		return nil, errs.NewStorageFailureErrorWithCause("find order by package code", err)
	}

	return toDomain(dto)
}

// ListByAccountID retrieves all orders of an account ordered by id.
func (r *GormOrderRepository) ListByAccountID(ctx context.Context, accountID int64) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.withAddresses(ctx).Where("account_id = ?", accountID).Order("id").Find(&dtos).Error
	if err != nil {
		return nil, errs.NewStorageFailureErrorWithCause("list account orders", err)
	}

	return toDomainList(dtos)
}

// ListActive retrieves all orders not yet Delivered ordered by id.
func (r *GormOrderRepository) ListActive(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.withAddresses(ctx).Where("status <> ?", order.Delivered.String()).Order("id").Find(&dtos).Error
	if err != nil {
		return nil, errs.NewStorageFailureErrorWithCause("list active orders", err)
	}

	return toDomainList(dtos)
}

// Insert persists the draft with its addresses in one transaction.
//
// The origin address is reused when it already has an id; the destination is always
// stored as a new row. Each package code attempt runs in its own savepoint so a
// collision does not abort the surrounding transaction.
func (r *GormOrderRepository) Insert(ctx context.Context, draft *order.Order) (int64, error) {
	if err := draft.Validate(); err != nil {
		return 0, err
	}

	var (
		row                     OrderDTO
		originID, destinationID int64
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		addresses := addressrepo.NewGormAddressRepository(tx)

		if originID, err = resolveAddress(ctx, addresses, draft.Origin()); err != nil {
			return err
		}
		if destinationID, err = addresses.Insert(ctx, draft.Destination()); err != nil {
			return err
		}

		row, err = r.insertWithUniqueCode(tx, draft, originID, destinationID)
		return err
	})
	if err != nil {
		return 0, err
	}

	code, err := kernel.PackageCodeFromString(row.PackageCode)
	if err != nil {
		return 0, errs.NewStorageFailureErrorWithCause("insert order", err)
	}
	draft.MarkPersisted(row.ID, code, originID, destinationID)

	return row.ID, nil
}

// UpdateStatus overwrites the stored status.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, orderID int64, status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", orderID).Update("status", status.String())
	if result.Error != nil {
		return errs.NewStorageFailureErrorWithCause("update order status", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", orderID)
	}

	return nil
}

func (r *GormOrderRepository) insertWithUniqueCode(
	tx *gorm.DB,
	draft *order.Order,
	originID, destinationID int64,
) (OrderDTO, error) {
	var lastCode kernel.PackageCode

	for range r.maxAttempts {
		lastCode = r.newPackageCode()
		if err := lastCode.Validate(); err != nil {
			return OrderDTO{}, errs.NewStorageFailureErrorWithCause("generate package code", err)
		}
		row := fromDomain(draft, lastCode, originID, destinationID)

		err := tx.Transaction(func(sp *gorm.DB) error {
			return sp.Omit(clause.Associations).Create(&row).Error
		})
		switch {
		case err == nil:
			return row, nil
		case pgerr.IsUniqueViolation(err, packageCodeUniqueIndex):
			continue
		case pgerr.IsForeignKeyViolation(err):
			return OrderDTO{}, errs.NewObjectNotFoundErrorWithCause("account", draft.AccountID(), err)
		default:
			return OrderDTO{}, errs.NewStorageFailureErrorWithCause("insert order", err)
		}
	}

	return OrderDTO{}, errs.NewStorageFailureErrorWithCause(
		"insert order", errs.NewConflictError("package code", lastCode.String()))
}

func (r *GormOrderRepository) withAddresses(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("OriginAddress").Preload("DestinationAddress")
}

func resolveAddress(ctx context.Context, repo *addressrepo.GormAddressRepository, a address.Address) (int64, error) {
	if a.IsPersisted() {
		return a.ID(), nil
	}
	return repo.Insert(ctx, a)
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
