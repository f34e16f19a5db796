package accountrepo

import (
	"context"
	"errors"
	"fmt"

	"dronedelivery/internal/adapters/out/postgres/pgerr"
	"dronedelivery/internal/core/domain/model/account"
	"dronedelivery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const emailUniqueIndex = "idx_accounts_email"

// GormAccountRepository implements ports.AccountRepository using GORM.
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a repository bound to db, which may be a transaction.
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// Get retrieves an account with its home address.
func (r *GormAccountRepository) Get(ctx context.Context, id int64) (*account.Account, error) {
	var dto AccountDTO
	err := r.db.WithContext(ctx).Preload("Address").First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", id)
		}
		return nil, errs.NewStorageFailureErrorWithCause("get account", err)
	}

	acc, err := toDomain(dto)
	if err != nil {
		return nil, errs.NewStorageFailureErrorWithCause("decode account", err)
	}
	return acc, nil
}

// Add inserts the account row. The home address must already be persisted.
func (r *GormAccountRepository) Add(ctx context.Context, acc *account.Account) error {
	if err := acc.Validate(); err != nil {
		return err
	}

	if !acc.HomeAddress().IsPersisted() {
		return errs.NewValueIsInvalidErrorWithCause(
			"home address is invalid", fmt.Errorf("address for %s is not persisted", acc.Email()))
	}

	dto := fromDomain(acc)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err, emailUniqueIndex) {
			return errs.NewConflictError("email", acc.Email())
		}
		return errs.NewStorageFailureErrorWithCause("insert account", err)
	}

	acc.AssignIdentity(dto.ID, dto.AddressID)
	return nil
}
