package order

import (
	"errors"
	"fmt"
	"time"

	"dronedelivery/internal/core/domain/model/address"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order is a single delivery request tracked from creation to delivery. It is the
// aggregate root owning the status lifecycle.
//
// Order follows these invariants:
//   - owning account id is positive and never changes
//   - origin and destination are constructed addresses
//   - ship date is set and is not after the delivery date
//   - status only moves forward (see Status)
//
// A draft built by NewOrder has no id and no package code; storage assigns both on insert.
type Order struct {
	// id is assigned by storage (0 for drafts)
	id int64

	// packageCode is the customer-facing tracking code (zero for drafts)
	packageCode kernel.PackageCode

	accountID   int64
	origin      address.Address
	destination address.Address

	shipDate     time.Time
	deliveryDate time.Time

	status Status

	guard guard.ConstructorGuard
}

// NewOrder builds an order draft in the Created status.
//
// Parameters:
//   - accountID: owning account (must be positive)
//   - origin: the account's home address at the time of creation
//   - destination: the address supplied by the requester
//   - shipDate: creation time
//   - deliveryDate: estimated delivery time, not before shipDate
//
// Example:
//
//	now := time.Now().UTC()
//	draft, err := order.NewOrder(acc.ID(), acc.HomeAddress(), dest, now, now.Add(48*time.Hour))
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	accountID int64,
	origin, destination address.Address,
	shipDate, deliveryDate time.Time,
) (*Order, error) {
	o := &Order{
		status: Created,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setAccountID(accountID),
		o.setAddresses(origin, destination),
		o.setDates(shipDate, deliveryDate),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds a persisted order. Used by repositories only.
func RestoreOrder(
	id int64,
	packageCode kernel.PackageCode,
	accountID int64,
	origin, destination address.Address,
	shipDate, deliveryDate time.Time,
	status Status,
) (*Order, error) {
	o, err := NewOrder(accountID, origin, destination, shipDate, deliveryDate)
	if err != nil {
		return nil, err
	}

	if id <= 0 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(
			"order id is invalid", fmt.Errorf("%d is not greater than 0", id)))
	}

	if err = errors.Join(err, packageCode.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	o.id = id
	o.packageCode = packageCode
	o.status = status

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two persisted orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.IsPersisted() && o.id == other.id
}

func (o *Order) ID() int64 {
	return o.id
}

func (o *Order) PackageCode() kernel.PackageCode {
	return o.packageCode
}

func (o *Order) AccountID() int64 {
	return o.accountID
}

func (o *Order) Origin() address.Address {
	return o.origin
}

func (o *Order) Destination() address.Address {
	return o.destination
}

func (o *Order) ShipDate() time.Time {
	return o.shipDate
}

func (o *Order) DeliveryDate() time.Time {
	return o.deliveryDate
}

func (o *Order) Status() Status {
	return o.status
}

// IsPersisted reports whether storage has assigned an id.
func (o *Order) IsPersisted() bool {
	return o.id > 0
}

// IsActive reports whether the order has not reached the terminal status.
func (o *Order) IsActive() bool {
	return !o.status.IsTerminal()
}

// IsOverdue reports whether an active order has passed its delivery date.
func (o *Order) IsOverdue(now time.Time) bool {
	return o.IsActive() && now.After(o.deliveryDate)
}

// ChangeStatus moves the order forward in its lifecycle.
//
// Returns an error wrapping ErrStatusTransitionIsForbidden if next does not come after
// the current status, and a ValueIsInvalidError if next is not a valid status.
func (o *Order) ChangeStatus(next Status) error {
	if err := o.status.ValidateTransition(next); err != nil {
		return err
	}

	o.status = next
	return nil
}

// MarkPersisted records identifiers handed out by storage on insert.
func (o *Order) MarkPersisted(id int64, packageCode kernel.PackageCode, originID, destinationID int64) {
	o.id = id
	o.packageCode = packageCode
	o.origin = o.origin.WithID(originID)
	o.destination = o.destination.WithID(destinationID)
}

func (o *Order) setAccountID(accountID int64) error {
	if accountID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"account id is invalid", fmt.Errorf("%d is not greater than 0", accountID))
	}
	o.accountID = accountID
	return nil
}

func (o *Order) setAddresses(origin, destination address.Address) error {
	if err := errors.Join(origin.Validate(), destination.Validate()); err != nil {
		return err
	}
	o.origin = origin
	o.destination = destination
	return nil
}

// setDates enforces shipDate <= deliveryDate.
func (o *Order) setDates(shipDate, deliveryDate time.Time) error {
	if shipDate.IsZero() {
		return errs.NewValueIsRequiredError("ship date")
	}
	if deliveryDate.IsZero() {
		return errs.NewValueIsRequiredError("delivery date")
	}
	if deliveryDate.Before(shipDate) {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery date is invalid",
			fmt.Errorf("%s is before ship date %s", deliveryDate.Format(time.RFC3339), shipDate.Format(time.RFC3339)),
		)
	}
	o.shipDate = shipDate
	o.deliveryDate = deliveryDate
	return nil
}
