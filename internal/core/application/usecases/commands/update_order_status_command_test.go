package commands_test

import (
	"testing"

	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	cmd, err := commands.NewUpdateOrderStatusCommand(3, order.InTransit)
	require.NoError(t, err)
	assert.Equal(t, int64(3), cmd.OrderID())
	assert.Equal(t, order.InTransit, cmd.Status())

	_, err = commands.NewUpdateOrderStatusCommand(-3, order.Unknown)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "order id is invalid")
	assert.Contains(t, err.Error(), "0 is not a valid status")

	assert.ErrorIs(t, commands.UpdateOrderStatusCommand{}.Validate(),
		commands.ErrUpdateOrderStatusCommandIsNotConstructed)
}
