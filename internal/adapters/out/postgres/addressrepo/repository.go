package addressrepo

import (
	"context"
	"errors"

	"dronedelivery/internal/core/domain/model/address"
	"dronedelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAddressRepository implements ports.AddressRepository using GORM.
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a repository bound to db, which may be a transaction.
func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// Get retrieves an address by id.
func (r *GormAddressRepository) Get(ctx context.Context, id int64) (address.Address, error) {
	var dto AddressDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return address.Address{}, errs.NewObjectNotFoundError("address", id)
		}
		return address.Address{}, errs.NewStorageFailureErrorWithCause("get address", err)
	}

	a, err := ToDomain(dto)
	if err != nil {
		return address.Address{}, errs.NewStorageFailureErrorWithCause("decode address", err)
	}
	return a, nil
}

// Insert stores a new row for a and returns its id. The id carried by a, if any, is ignored.
func (r *GormAddressRepository) Insert(ctx context.Context, a address.Address) (int64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}

	dto := FromDomain(a)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, errs.NewStorageFailureErrorWithCause("insert address", err)
	}

	return dto.ID, nil
}
