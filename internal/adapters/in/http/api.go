package http

import (
	"time"

	"dronedelivery/internal/core/application/usecases/queries"
	"dronedelivery/internal/core/domain/model/address"

	"github.com/samber/lo"
)

// Address is the wire shape of a postal address.
type Address struct {
	ID      *int64 `json:"id,omitempty"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

func (a Address) toDomain() (address.Address, error) {
	return address.NewAddress(a.Street, a.City, a.State, a.ZipCode)
}

func addressFromView(v queries.AddressView) Address {
	return Address{
		ID:      lo.ToPtr(v.ID),
		Street:  v.Street,
		City:    v.City,
		State:   v.State,
		ZipCode: v.ZipCode,
	}
}

// NewAccount is the body of POST /accounts.
type NewAccount struct {
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	HomeAddress Address `json:"homeAddress"`
}

// AccountCreated carries the id of a registered account.
type AccountCreated struct {
	ID int64 `json:"id"`
}

// NewOrder is the body of POST /accounts/{accountId}/orders.
type NewOrder struct {
	Destination Address `json:"destination"`
}

// OrderOutcome carries the user-facing message of an order request.
type OrderOutcome struct {
	OrderID *int64 `json:"orderId,omitempty"`
	Message string `json:"message"`
}

// Order is the wire form of a stored order.
type Order struct {
	ID           int64     `json:"id"`
	PackageCode  string    `json:"packageCode"`
	ShipDate     time.Time `json:"shipDate"`
	DeliveryDate time.Time `json:"deliveryDate"`
	AccountID    int64     `json:"accountId"`
	Origin       Address   `json:"origin"`
	Destination  Address   `json:"destination"`
	Status       string    `json:"status"`
}

func orderFromView(v queries.OrderView) Order {
	return Order{
		ID:           v.ID,
		PackageCode:  v.PackageCode,
		ShipDate:     v.ShipDate,
		DeliveryDate: v.DeliveryDate,
		AccountID:    v.AccountID,
		Origin:       addressFromView(v.Origin),
		Destination:  addressFromView(v.Destination),
		Status:       v.Status,
	}
}

func ordersFromViews(views []queries.OrderView) []Order {
	return lo.Map(views, func(v queries.OrderView, _ int) Order {
		return orderFromView(v)
	})
}

// StatusChange is the body of PATCH /orders/{orderId}/status.
type StatusChange struct {
	Status string `json:"status"`
}

// Error is returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
