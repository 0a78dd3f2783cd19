package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valery-blanc/timesheet-pal/internal/timesheet"
)

func TestDayMergesFullHours(t *testing.T) {
	store := memStore()
	c, a := seedPair(t, store)
	for _, slot := range []float64{9, 9.5, 10} {
		_, err := store.ToggleEntry("2024-03-06", slot, c.ID, a.ID)
		require.NoError(t, err)
	}

	cmd, stdout := capture(dayCmd)
	err := runDay(cmd, store, "2024-03-06", true, timesheet.DefaultWorkHours, fixedNow)

	assert.NoError(t, err)
	out := stdout.String()
	assert.Contains(t, out, "09:00–10:00")
	assert.Contains(t, out, "10:00–10:30")
	assert.NotContains(t, out, "09:30–10:00")
	assert.Contains(t, out, "total: 1.5h")
}

func TestDayShowsFrozenMarker(t *testing.T) {
	store := memStore()
	_, err := store.ToggleFreeze("2024-03-06")
	require.NoError(t, err)

	cmd, stdout := capture(dayCmd)
	err = runDay(cmd, store, "2024-03-06", true, timesheet.DefaultWorkHours, fixedNow)

	assert.NoError(t, err)
	assert.Contains(t, stdout.String(), "(frozen)")
}

func TestNameIndexDanglingRefs(t *testing.T) {
	idx := nameIndex{
		clients:    map[string]string{"c1": "Acme"},
		activities: map[string]string{},
	}

	line := idx.line(timesheet.TimeEntry{ClientID: "c1", ActivityID: "gone"})

	assert.Equal(t, "Acme / Unknown", line)
}

func TestDayWindowFromConfigWhenNoPreferenceStored(t *testing.T) {
	store := memStore()
	c, a := seedPair(t, store)
	for _, slot := range []float64{7, 9} {
		_, err := store.ToggleEntry("2024-03-06", slot, c.ID, a.ID)
		require.NoError(t, err)
	}

	cmd, stdout := capture(dayCmd)
	window := timesheet.WorkHours{Start: 9, End: 11}
	err := runDay(cmd, store, "2024-03-06", false, window, fixedNow)

	assert.NoError(t, err)
	out := stdout.String()
	assert.Contains(t, out, "09:00–09:30")
	assert.NotContains(t, out, "07:00")
}

func TestDayStoredPreferenceBeatsConfigWindow(t *testing.T) {
	store := memStore()
	c, a := seedPair(t, store)
	_, err := store.ToggleEntry("2024-03-06", 7, c.ID, a.ID)
	require.NoError(t, err)
	require.NoError(t, store.SetWorkHours(timesheet.WorkHours{Start: 7, End: 12}))

	cmd, stdout := capture(dayCmd)
	window := timesheet.WorkHours{Start: 9, End: 11}
	err = runDay(cmd, store, "2024-03-06", false, window, fixedNow)

	assert.NoError(t, err)
	assert.Contains(t, stdout.String(), "07:00–07:30")
}

func TestDayLastHourMergesTo2400(t *testing.T) {
	store := memStore()
	c, a := seedPair(t, store)
	for _, slot := range []float64{23, 23.5} {
		_, err := store.ToggleEntry("2024-03-06", slot, c.ID, a.ID)
		require.NoError(t, err)
	}

	cmd, stdout := capture(dayCmd)
	err := runDay(cmd, store, "2024-03-06", true, timesheet.DefaultWorkHours, fixedNow)

	assert.NoError(t, err)
	assert.Contains(t, stdout.String(), "23:00–24:00")
}
