package queries_test

import (
	"context"
	"testing"
	"time"

	"dronedelivery/internal/core/domain/model/address"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderReader struct {
	mock.Mock
}

func (m *MockOrderReader) FindByOrderID(ctx context.Context, orderID int64) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderReader) FindByPackageCode(ctx context.Context, code kernel.PackageCode) (*order.Order, error) {
	args := m.Called(ctx, code)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderReader) ListByAccountID(ctx context.Context, accountID int64) ([]*order.Order, error) {
	args := m.Called(ctx, accountID)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderReader) ListActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

var shipDate = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func storedOrder(t *testing.T, id int64, code string, status order.Status) *order.Order {
	t.Helper()
	origin, err := address.RestoreAddress(1, "100 Main St", "Springfield", "IL", "62701")
	require.NoError(t, err)
	destination, err := address.RestoreAddress(id+100, "200 Oak Ave", "Springfield", "IL", "62704")
	require.NoError(t, err)
	packageCode, err := kernel.PackageCodeFromString(code)
	require.NoError(t, err)

	o, err := order.RestoreOrder(id, packageCode, 7, origin, destination, shipDate, shipDate.Add(48*time.Hour), status)
	require.NoError(t, err)
	return o
}
