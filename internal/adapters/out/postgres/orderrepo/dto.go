// Package orderrepo provides the GORM order store: row mapping, lookups, the atomic
// address-then-order insert with package code retry, and status updates.
package orderrepo

import (
	"time"

	"dronedelivery/internal/adapters/out/postgres/accountrepo"
	"dronedelivery/internal/adapters/out/postgres/addressrepo"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/pkg/errs"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Statuses are stored by name; addresses and the account are foreign keys.
type OrderDTO struct {
	ID                   int64                  `gorm:"primaryKey;autoIncrement"`
	PackageCode          string                 `gorm:"type:char(16);not null;uniqueIndex:idx_orders_package_code"`
	ShipDate             time.Time              `gorm:"not null"`
	DeliveryDate         time.Time              `gorm:"not null"`
	AccountID            int64                  `gorm:"not null;index:idx_orders_account_id"`
	Account              accountrepo.AccountDTO `gorm:"foreignKey:AccountID"`
	OriginAddressID      int64                  `gorm:"not null"`
	OriginAddress        addressrepo.AddressDTO `gorm:"foreignKey:OriginAddressID"`
	DestinationAddressID int64                  `gorm:"not null"`
	DestinationAddress   addressrepo.AddressDTO `gorm:"foreignKey:DestinationAddressID"`
	Status               string                 `gorm:"type:varchar(16);not null;index:idx_orders_status"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain maps a draft to a row ready for insert, with the package code and
// address ids resolved during the insert.
func fromDomain(draft *order.Order, code kernel.PackageCode, originID, destinationID int64) OrderDTO {
	return OrderDTO{
		PackageCode:          code.String(),
		ShipDate:             draft.ShipDate(),
		DeliveryDate:         draft.DeliveryDate(),
		AccountID:            draft.AccountID(),
		OriginAddressID:      originID,
		DestinationAddressID: destinationID,
		Status:               draft.Status().String(),
	}
}

// toDomain converts a row with preloaded addresses to an order aggregate. A row that
// no longer satisfies the domain rules is reported as a storage failure.
func toDomain(dto OrderDTO) (*order.Order, error) {
	o, err := restore(dto)
	if err != nil {
		return nil, errs.NewStorageFailureErrorWithCause("decode order", err)
	}
	return o, nil
}

func restore(dto OrderDTO) (*order.Order, error) {
	code, err := kernel.PackageCodeFromString(dto.PackageCode)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	origin, err := addressrepo.ToDomain(dto.OriginAddress)
	if err != nil {
		return nil, err
	}

	destination, err := addressrepo.ToDomain(dto.DestinationAddress)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.ID,
		code,
		dto.AccountID,
		origin,
		destination,
		dto.ShipDate,
		dto.DeliveryDate,
		status,
	)
}
