package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientRemoveHappyPath(t *testing.T) {
	store := memStore()
	c, err := store.AddClient("Acme", "")
	require.NoError(t, err)

	cmd, stdout := capture(clientRemoveCmd)
	err = runClientRemove(cmd, store, c.ID)

	assert.NoError(t, err)
	assert.Contains(t, stdout.String(), "client 'Acme' removed")

	clients, err := store.Clients()
	require.NoError(t, err)
	assert.Empty(t, clients)
}

func TestClientRemoveRefusedWhileReferenced(t *testing.T) {
	store := memStore()
	c, err := store.AddClient("Acme", "")
	require.NoError(t, err)
	a, err := store.AddActivity("Dev", "DEV")
	require.NoError(t, err)
	changed, err := store.ToggleEntry("2024-03-06", 9, c.ID, a.ID)
	require.NoError(t, err)
	require.True(t, changed)

	cmd, _ := capture(clientRemoveCmd)
	err = runClientRemove(cmd, store, "Acme")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "still has entries")

	clients, err := store.Clients()
	require.NoError(t, err)
	assert.Len(t, clients, 1)
}
