package account

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"dronedelivery/internal/core/domain/model/address"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

// Maximum field lengths in characters, matching the accounts table.
const (
	MaxNameLength  = 128
	MaxEmailLength = 255
)

var (
	// ErrAccountIsNotConstructed is returned when using an Account built without NewAccount or RestoreAccount.
	ErrAccountIsNotConstructed = errors.New("account must be created via NewAccount or RestoreAccount")
	// ErrFirstNameIsRequired is returned for a blank first name.
	ErrFirstNameIsRequired = errs.NewValueIsRequiredError("first name")
	// ErrLastNameIsRequired is returned for a blank last name.
	ErrLastNameIsRequired = errs.NewValueIsRequiredError("last name")
)

// Account is a registered customer.
//
// Business rules:
//   - first and last name are required, at most MaxNameLength characters
//   - email must be a bare, parseable address of at most MaxEmailLength characters
//   - the home address must be a constructed address.Address
type Account struct {
	id        int64
	firstName string
	lastName  string
	email     string
	home      address.Address

	guard guard.ConstructorGuard
}

// NewAccount builds an account that has not been persisted yet.
//
// Example:
//
//	home, _ := address.NewAddress("100 Main St", "Springfield", "IL", "62701")
//	acc, err := account.NewAccount("Ada", "Lovelace", "ada@example.com", home)
func NewAccount(firstName, lastName, email string, home address.Address) (*Account, error) {
	a := &Account{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		a.setFirstName(firstName),
		a.setLastName(lastName),
		a.setEmail(email),
		a.setHome(home),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAccount rebuilds a persisted account.
func RestoreAccount(id int64, firstName, lastName, email string, home address.Address) (*Account, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"account id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}

	a, err := NewAccount(firstName, lastName, email, home)
	if err != nil {
		return nil, err
	}
	a.id = id

	return a, nil
}

// Validate ensures the account was built through a constructor.
func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

func (a *Account) ID() int64 {
	return a.id
}

func (a *Account) FirstName() string {
	return a.firstName
}

func (a *Account) LastName() string {
	return a.lastName
}

func (a *Account) Email() string {
	return a.email
}

// HomeAddress is the origin used for every order placed by the account.
func (a *Account) HomeAddress() address.Address {
	return a.home
}

// IsPersisted reports whether storage has assigned an identifier.
func (a *Account) IsPersisted() bool {
	return a.id > 0
}

// AssignIdentity records identifiers handed out by storage on insert.
func (a *Account) AssignIdentity(id, homeAddressID int64) {
	a.id = id
	a.home = a.home.WithID(homeAddressID)
}

func (a *Account) setFirstName(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return ErrFirstNameIsRequired
	}
	if err := checkLength("first name", v, MaxNameLength); err != nil {
		return err
	}
	a.firstName = v
	return nil
}

func (a *Account) setLastName(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return ErrLastNameIsRequired
	}
	if err := checkLength("last name", v, MaxNameLength); err != nil {
		return err
	}
	a.lastName = v
	return nil
}

func (a *Account) setEmail(v string) error {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if err := checkLength("email", v, MaxEmailLength); err != nil {
		return err
	}

	parsed, err := mail.ParseAddress(v)
	if err != nil || parsed.Address != v {
		return errs.NewValueIsInvalidErrorWithCause("email is invalid", fmt.Errorf("%q is not a bare email address", v))
	}

	a.email = v
	return nil
}

func (a *Account) setHome(home address.Address) error {
	if err := home.Validate(); err != nil {
		return err
	}
	a.home = home
	return nil
}

func checkLength(name, v string, maxLength int) error {
	if n := utf8.RuneCountInString(v); n > maxLength {
		return errs.NewValueIsOutOfRangeError(name+" length", n, 1, maxLength)
	}
	return nil
}
