package commands_test

import (
	"testing"
	"time"

	"dronedelivery/internal/core/domain/model/account"
	"dronedelivery/internal/core/domain/model/address"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

func homeAddress(t *testing.T) address.Address {
	t.Helper()
	home, err := address.RestoreAddress(1, "100 Main St", "Springfield", "IL", "62701")
	require.NoError(t, err)
	return home
}

func destinationAddress(t *testing.T) address.Address {
	t.Helper()
	dest, err := address.NewAddress("200 Oak Ave", "Springfield", "IL", "62704")
	require.NoError(t, err)
	return dest
}

func storedAccount(t *testing.T, id int64) *account.Account {
	t.Helper()
	acc, err := account.RestoreAccount(id, "Ada", "Lovelace", "ada@example.com", homeAddress(t))
	require.NoError(t, err)
	return acc
}

func storedOrder(t *testing.T, id int64, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(id, kernel.NewPackageCode(), 7, homeAddress(t),
		destinationAddress(t).WithID(2), now, now.Add(48*time.Hour), status)
	require.NoError(t, err)
	return o
}
