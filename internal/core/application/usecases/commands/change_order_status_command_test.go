package commands_test

import (
	"testing"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStatusCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewChangeOrderStatusCommand(id, "shipped")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, "shipped", cmd.Status())
}

func TestNewChangeOrderStatusCommand_UnknownStatusIsAccepted(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), "Teleported")
	require.NoError(t, err)
}

func TestNewChangeOrderStatusCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(kernel.UUID{}, " ")

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	assert.ErrorIs(t, err, commands.ErrStatusIsRequired)
}

func TestChangeOrderStatusCommand_NotConstructed(t *testing.T) {
	var cmd commands.ChangeOrderStatusCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrChangeOrderStatusCommandIsNotConstructed)
}
