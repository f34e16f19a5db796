package address

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

// Maximum component lengths in characters, matching the addresses table.
const (
	MaxStreetLength  = 255
	MaxCityLength    = 128
	MaxStateLength   = 64
	MaxZipCodeLength = 16
)

// ErrAddressIsNotConstructed is returned when an Address was not created through NewAddress or RestoreAddress.
var ErrAddressIsNotConstructed = errors.New("address must be created via NewAddress or RestoreAddress")

// Address is a structured postal location.
//
// Address rows attached to an order are never modified, so the type exposes no setters.
type Address struct {
	id      int64
	street  string
	city    string
	state   string
	zipCode string

	guard guard.ConstructorGuard
}

// NewAddress builds an unpersisted address. Every component is required and
// bounded by its Max*Length constant.
//
// Example:
//
//	dest, err := address.NewAddress("200 Oak Ave", "Springfield", "IL", "62704")
//	if err != nil {
//	    return err
//	}
func NewAddress(street, city, state, zipCode string) (Address, error) {
	a := Address{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		a.setStreet(street),
		a.setCity(city),
		a.setState(state),
		a.setZipCode(zipCode),
	); err != nil {
		return Address{}, err
	}

	return a, nil
}

// RestoreAddress rebuilds a persisted address from storage.
func RestoreAddress(id int64, street, city, state, zipCode string) (Address, error) {
	if id <= 0 {
		return Address{}, errs.NewValueIsInvalidErrorWithCause(
			"address id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}

	a, err := NewAddress(street, city, state, zipCode)
	if err != nil {
		return Address{}, err
	}
	a.id = id

	return a, nil
}

// Validate reports whether the address was built through a constructor.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// WithID returns a copy carrying the identifier assigned by storage.
func (a Address) WithID(id int64) Address {
	a.id = id
	return a
}

func (a Address) ID() int64 {
	return a.id
}

func (a Address) Street() string {
	return a.street
}

func (a Address) City() string {
	return a.city
}

func (a Address) State() string {
	return a.state
}

func (a Address) ZipCode() string {
	return a.zipCode
}

// IsPersisted reports whether storage has assigned an identifier.
func (a Address) IsPersisted() bool {
	return a.id > 0
}

// IsSameLocation compares postal components only, ignoring identifiers.
func (a Address) IsSameLocation(other Address) bool {
	return a.street == other.street &&
		a.city == other.city &&
		a.state == other.state &&
		a.zipCode == other.zipCode
}

// String formats the address on one line, e.g. "100 Main St, Springfield, IL 62704".
func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s %s", a.street, a.city, a.state, a.zipCode)
}

func (a *Address) setStreet(v string) error {
	v, err := required("street", v, MaxStreetLength)
	a.street = v
	return err
}

func (a *Address) setCity(v string) error {
	v, err := required("city", v, MaxCityLength)
	a.city = v
	return err
}

func (a *Address) setState(v string) error {
	v, err := required("state", v, MaxStateLength)
	a.state = v
	return err
}

func (a *Address) setZipCode(v string) error {
	v, err := required("zip code", v, MaxZipCodeLength)
	a.zipCode = v
	return err
}

func required(name, v string, maxLength int) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", errs.NewValueIsRequiredError(name)
	}
	if n := utf8.RuneCountInString(v); n > maxLength {
		return "", errs.NewValueIsOutOfRangeError(name+" length", n, 1, maxLength)
	}
	return v, nil
}
