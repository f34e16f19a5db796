// Package addressrepo persists postal addresses with GORM.
package addressrepo

import (
	"dronedelivery/internal/core/domain/model/address"
)

// AddressDTO is the row shape of the addresses table.
type AddressDTO struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	Street  string `gorm:"type:varchar(255);not null"`
	City    string `gorm:"type:varchar(128);not null"`
	State   string `gorm:"type:varchar(64);not null"`
	ZipCode string `gorm:"type:varchar(16);not null"`
}

// TableName specifies the database table name for addresses.
func (AddressDTO) TableName() string {
	return "addresses"
}

// FromDomain maps an address to its row. An unpersisted address maps to ID 0 so the
// database assigns one.
func FromDomain(a address.Address) AddressDTO {
	return AddressDTO{
		ID:      a.ID(),
		Street:  a.Street(),
		City:    a.City(),
		State:   a.State(),
		ZipCode: a.ZipCode(),
	}
}

// ToDomain restores a persisted address.
func ToDomain(dto AddressDTO) (address.Address, error) {
	return address.RestoreAddress(dto.ID, dto.Street, dto.City, dto.State, dto.ZipCode)
}
