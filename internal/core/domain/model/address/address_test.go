package address_test

import (
	"strings"
	"testing"

	"dronedelivery/internal/core/domain/model/address"
	"dronedelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("should trim and keep all components", func(t *testing.T) {
		a, err := address.NewAddress(" 200 Oak Ave ", "Springfield", "IL", " 62704")

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, "200 Oak Ave", a.Street())
		assert.Equal(t, "Springfield", a.City())
		assert.Equal(t, "IL", a.State())
		assert.Equal(t, "62704", a.ZipCode())
		assert.False(t, a.IsPersisted())
		assert.Equal(t, int64(0), a.ID())
		assert.Equal(t, "200 Oak Ave, Springfield, IL 62704", a.String())
	})

	t.Run("should report every missing component", func(t *testing.T) {
		_, err := address.NewAddress("", "  ", "IL", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "street")
		assert.Contains(t, err.Error(), "city")
		assert.Contains(t, err.Error(), "zip code")
		assert.NotContains(t, err.Error(), "state")
	})

	t.Run("should reject components longer than the column limits", func(t *testing.T) {
		_, err := address.NewAddress(strings.Repeat("s", address.MaxStreetLength+1), "Springfield", "IL",
			strings.Repeat("9", address.MaxZipCodeLength+1))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "street length")
		assert.Contains(t, err.Error(), "zip code length")
		assert.NotContains(t, err.Error(), "city length")
	})

	t.Run("should accept components at the column limits", func(t *testing.T) {
		a, err := address.NewAddress(
			strings.Repeat("s", address.MaxStreetLength),
			strings.Repeat("c", address.MaxCityLength),
			strings.Repeat("é", address.MaxStateLength),
			strings.Repeat("9", address.MaxZipCodeLength))

		require.NoError(t, err)
		assert.Len(t, a.Street(), address.MaxStreetLength)
	})
}

func TestRestoreAddress(t *testing.T) {
	t.Run("should carry the stored id", func(t *testing.T) {
		a, err := address.RestoreAddress(7, "100 Main St", "Springfield", "IL", "62701")

		require.NoError(t, err)
		assert.Equal(t, int64(7), a.ID())
		assert.True(t, a.IsPersisted())
	})

	t.Run("should reject non positive id", func(t *testing.T) {
		_, err := address.RestoreAddress(0, "100 Main St", "Springfield", "IL", "62701")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestAddress_IsSameLocation(t *testing.T) {
	a, _ := address.NewAddress("100 Main St", "Springfield", "IL", "62701")
	b, _ := address.RestoreAddress(3, "100 Main St", "Springfield", "IL", "62701")
	c, _ := address.NewAddress("200 Oak Ave", "Springfield", "IL", "62701")

	assert.True(t, a.IsSameLocation(b))
	assert.False(t, a.IsSameLocation(c))
	assert.Equal(t, int64(9), a.WithID(9).ID())
	assert.Equal(t, int64(0), a.ID())
}

func TestAddress_ZeroValue(t *testing.T) {
	var a address.Address

	assert.Equal(t, address.ErrAddressIsNotConstructed, a.Validate())
}
