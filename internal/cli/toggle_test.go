package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valery-blanc/timesheet-pal/internal/timesheet"
)

func seedPair(t *testing.T, store *timesheet.Store) (timesheet.Client, timesheet.Activity) {
	t.Helper()
	c, err := store.AddClient("Acme", "")
	require.NoError(t, err)
	a, err := store.AddActivity("Development", "DEV")
	require.NoError(t, err)
	return c, a
}

func TestToggleAssignsSlot(t *testing.T) {
	store := memStore()
	_, _ = seedPair(t, store)
	cmd, stdout := capture(toggleCmd)

	err := runToggle(cmd, store, "2024-03-06", "9:30", "Acme", "DEV", false, fixedNow)

	assert.NoError(t, err)
	assert.Contains(t, stdout.String(), "2024-03-06 09:30–10:00")
	assert.Contains(t, stdout.String(), "Acme")

	entries, err := store.EntriesForDate("2024-03-06")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 9.5, entries[0].Slot)
}

func TestToggleClearsOccupiedSlot(t *testing.T) {
	store := memStore()
	c, a := seedPair(t, store)
	_, err := store.ToggleEntry("2024-03-06", 9.5, c.ID, a.ID)
	require.NoError(t, err)

	cmd, stdout := capture(toggleCmd)
	// No client/activity given: clearing must not need them.
	err = runToggle(cmd, store, "2024-03-06", "9:30", "", "", false, fixedNow)

	assert.NoError(t, err)
	assert.Contains(t, stdout.String(), "cleared")

	entries, err := store.EntriesForDate("2024-03-06")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestToggleFallsBackToSelection(t *testing.T) {
	store := memStore()
	c, a := seedPair(t, store)
	require.NoError(t, store.SetSelectedClient(c.ID))
	require.NoError(t, store.SetSelectedActivity(a.ID))

	cmd, _ := capture(toggleCmd)
	err := runToggle(cmd, store, "2024-03-06", "14", "", "", false, fixedNow)

	assert.NoError(t, err)
	entries, err := store.EntriesForDate("2024-03-06")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, c.ID, entries[0].ClientID)
}

func TestToggleNoSelectionErrors(t *testing.T) {
	store := memStore()
	_, _ = seedPair(t, store)

	cmd, _ := capture(toggleCmd)
	err := runToggle(cmd, store, "2024-03-06", "9", "", "", false, fixedNow)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "none selected")
}

func TestToggleFrozenDay(t *testing.T) {
	store := memStore()
	_, _ = seedPair(t, store)
	_, err := store.ToggleFreeze("2024-03-06")
	require.NoError(t, err)

	cmd, stdout := capture(toggleCmd)
	err = runToggle(cmd, store, "2024-03-06", "9", "Acme", "DEV", false, fixedNow)

	assert.NoError(t, err)
	assert.Contains(t, stdout.String(), "frozen")

	entries, err := store.EntriesForDate("2024-03-06")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestToggleFullHour(t *testing.T) {
	store := memStore()
	_, _ = seedPair(t, store)

	cmd, stdout := capture(toggleCmd)
	err := runToggle(cmd, store, "2024-03-06", "9", "Acme", "DEV", true, fixedNow)

	assert.NoError(t, err)
	assert.Contains(t, stdout.String(), "09:00–10:00")

	entries, err := store.EntriesForDate("2024-03-06")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestToggleFullHourClearsBothHalves(t *testing.T) {
	store := memStore()
	c, a := seedPair(t, store)
	_, err := store.ToggleEntry("2024-03-06", 9.5, c.ID, a.ID)
	require.NoError(t, err)

	cmd, _ := capture(toggleCmd)
	err = runToggle(cmd, store, "2024-03-06", "9", "", "", true, fixedNow)

	assert.NoError(t, err)
	entries, err := store.EntriesForDate("2024-03-06")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestToggleBadTime(t *testing.T) {
	store := memStore()
	cmd, _ := capture(toggleCmd)

	err := runToggle(cmd, store, "2024-03-06", "9:15", "Acme", "DEV", false, fixedNow)

	assert.Error(t, err)
}

func TestToggleDefaultsToViewDate(t *testing.T) {
	store := memStore()
	c, a := seedPair(t, store)
	require.NoError(t, store.SetCurrentViewDate("2024-03-08"))

	cmd, _ := capture(toggleCmd)
	err := runToggle(cmd, store, "", "10", c.ID, a.ID, false, fixedNow)

	assert.NoError(t, err)
	entries, err := store.EntriesForDate("2024-03-08")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
