package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valery-blanc/timesheet-pal/internal/timesheet"
)

func TestClientAddHappyPath(t *testing.T) {
	store := memStore()
	cmd, stdout := capture(clientAddCmd)

	err := runClientAdd(cmd, store, "Acme Corp", "")

	assert.NoError(t, err)
	assert.Contains(t, stdout.String(), "client 'Acme Corp' created")

	clients, err := store.Clients()
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Acme Corp", clients[0].Name)
	assert.Equal(t, "0 75% 55%", clients[0].Color)
}

func TestClientAddDuplicate(t *testing.T) {
	store := memStore()
	cmd, _ := capture(clientAddCmd)

	require.NoError(t, runClientAdd(cmd, store, "Acme", ""))
	err := runClientAdd(cmd, store, "acme", "")

	assert.ErrorIs(t, err, timesheet.ErrDuplicateName)
}

func TestClientAddEmptyName(t *testing.T) {
	store := memStore()
	cmd, _ := capture(clientAddCmd)

	err := runClientAdd(cmd, store, "   ", "")

	assert.ErrorIs(t, err, timesheet.ErrEmptyName)
}

func TestClientAddRegisteredAsSubcommand(t *testing.T) {
	commands := clientCmd.Commands()
	names := make([]string, len(commands))
	for i, cmd := range commands {
		names[i] = cmd.Name()
	}
	assert.Contains(t, names, "add")
}
