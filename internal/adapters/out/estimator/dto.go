package estimator

import (
	"time"

	"dronedelivery/internal/core/domain/model/address"
)

type addressDTO struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

func fromAddress(a address.Address) addressDTO {
	return addressDTO{
		Street:  a.Street(),
		City:    a.City(),
		State:   a.State(),
		ZipCode: a.ZipCode(),
	}
}

type serviceabilityRequest struct {
	Destination addressDTO `json:"destination"`
}

type serviceabilityResponse struct {
	Serviceable *bool `json:"serviceable"`
}

type estimateRequest struct {
	ShipDate    time.Time  `json:"shipDate"`
	Origin      addressDTO `json:"origin"`
	Destination addressDTO `json:"destination"`
}

type estimateResponse struct {
	DeliveryDate time.Time `json:"deliveryDate"`
}
