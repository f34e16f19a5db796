package kernel

import (
	"fmt"
	"strings"

	"dronedelivery/internal/pkg/errs"

	"github.com/google/uuid"
)

// PackageCodeLength is the exact length of every package code.
const PackageCodeLength = 16

// ErrPackageCodeIsNotConstructed indicates that a PackageCode was not initialized through
// NewPackageCode or PackageCodeFromString.
var ErrPackageCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"package code must be created via NewPackageCode or PackageCodeFromString")

// PackageCode is the opaque customer-facing tracking identifier of an order.
// It is independent of the numeric order id and unique across all orders.
//
// The zero value is invalid.
//
// Example:
//
//	code := kernel.NewPackageCode()
//	fmt.Println(code) // e.g. "9b1deb4d3b7d4bad"
type PackageCode struct {
	value string
}

// NewPackageCode generates a fresh random package code: the first 16 hex digits
// of a version 4 UUID. Uniqueness across orders is enforced by the store, which
// regenerates the code on collision.
func NewPackageCode() PackageCode {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return PackageCode{value: raw[:PackageCodeLength]}
}

// PackageCodeFromString parses a package code received from persistence or from a caller.
// The input must be exactly 16 hexadecimal characters; it is normalized to lower case.
//
// Example:
//
//	code, err := kernel.PackageCodeFromString("9B1DEB4D3B7D4BAD")
//	if err != nil {
//	    return fmt.Errorf("invalid tracking code: %w", err)
//	}
func PackageCodeFromString(s string) (PackageCode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != PackageCodeLength {
		return PackageCode{}, errs.NewValueIsOutOfRangeError(
			"package code length", len(s), PackageCodeLength, PackageCodeLength)
	}

	for _, r := range s {
		if !isHexDigit(r) {
			return PackageCode{}, errs.NewValueIsInvalidErrorWithCause(
				"package code is invalid",
				fmt.Errorf("%q is not a hexadecimal character", r),
			)
		}
	}

	return PackageCode{value: s}, nil
}

// String returns the 16 character representation.
func (c PackageCode) String() string {
	return c.value
}

// IsEqual compares two package codes.
func (c PackageCode) IsEqual(other PackageCode) bool {
	return c.value == other.value
}

// IsZero reports whether no code has been assigned yet.
func (c PackageCode) IsZero() bool {
	return c.value == ""
}

// Validate returns ErrPackageCodeIsNotConstructed for the zero value.
func (c PackageCode) Validate() error {
	if c.value == "" {
		return ErrPackageCodeIsNotConstructed
	}
	return nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')
}
