package queries

import (
	"time"

	"dronedelivery/internal/core/domain/model/address"
	"dronedelivery/internal/core/domain/model/order"

	"github.com/samber/lo"
)

// AddressView is the caller-facing shape of an address.
type AddressView struct {
	ID      int64
	Street  string
	City    string
	State   string
	ZipCode string
}

// OrderView is the caller-facing shape of an order.
type OrderView struct {
	ID           int64
	PackageCode  string
	ShipDate     time.Time
	DeliveryDate time.Time
	AccountID    int64
	Origin       AddressView
	Destination  AddressView
	Status       string
}

func newAddressView(a address.Address) AddressView {
	return AddressView{
		ID:      a.ID(),
		Street:  a.Street(),
		City:    a.City(),
		State:   a.State(),
		ZipCode: a.ZipCode(),
	}
}

func newOrderView(o *order.Order) OrderView {
	return OrderView{
		ID:           o.ID(),
		PackageCode:  o.PackageCode().String(),
		ShipDate:     o.ShipDate(),
		DeliveryDate: o.DeliveryDate(),
		AccountID:    o.AccountID(),
		Origin:       newAddressView(o.Origin()),
		Destination:  newAddressView(o.Destination()),
		Status:       o.Status().String(),
	}
}

func newOrderViews(orders []*order.Order) []OrderView {
	return lo.Map(orders, func(o *order.Order, _ int) OrderView {
		return newOrderView(o)
	})
}
