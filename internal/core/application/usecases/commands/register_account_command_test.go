package commands_test

import (
	"testing"

	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/domain/model/account"
	"dronedelivery/internal/core/domain/model/address"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterAccountCommand(t *testing.T) {
	home, err := address.NewAddress("100 Main St", "Springfield", "IL", "62701")
	require.NoError(t, err)

	cmd, err := commands.NewRegisterAccountCommand(" Ada ", "Lovelace", "ADA@example.com", home)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "Ada", cmd.FirstName())
	assert.Equal(t, "Lovelace", cmd.LastName())
	assert.Equal(t, "ada@example.com", cmd.Email())
	assert.Equal(t, home, cmd.Home())
}

func TestNewRegisterAccountCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewRegisterAccountCommand("", "Lovelace", "ada@example.com", address.Address{})

	require.ErrorIs(t, err, account.ErrFirstNameIsRequired)
	require.ErrorIs(t, err, address.ErrAddressIsNotConstructed)
	assert.ErrorIs(t, commands.RegisterAccountCommand{}.Validate(), commands.ErrRegisterAccountCommandIsNotConstructed)
}
