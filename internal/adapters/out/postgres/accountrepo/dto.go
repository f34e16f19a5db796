// Package accountrepo persists customer accounts with GORM.
package accountrepo

import (
	"dronedelivery/internal/adapters/out/postgres/addressrepo"
	"dronedelivery/internal/core/domain/model/account"
)

// AccountDTO is the row shape of the accounts table. Address is loaded with Preload.
type AccountDTO struct {
	ID        int64                  `gorm:"primaryKey;autoIncrement"`
	FirstName string                 `gorm:"type:varchar(128);not null"`
	LastName  string                 `gorm:"type:varchar(128);not null"`
	Email     string                 `gorm:"type:varchar(255);not null;uniqueIndex:idx_accounts_email"`
	AddressID int64                  `gorm:"not null"`
	Address   addressrepo.AddressDTO `gorm:"foreignKey:AddressID"`
}

// TableName specifies the database table name for accounts.
func (AccountDTO) TableName() string {
	return "accounts"
}

func fromDomain(acc *account.Account) AccountDTO {
	return AccountDTO{
		ID:        acc.ID(),
		FirstName: acc.FirstName(),
		LastName:  acc.LastName(),
		Email:     acc.Email(),
		AddressID: acc.HomeAddress().ID(),
	}
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	home, err := addressrepo.ToDomain(dto.Address)
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(dto.ID, dto.FirstName, dto.LastName, dto.Email, home)
}
