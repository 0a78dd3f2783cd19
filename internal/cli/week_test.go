package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekSumsPerDay(t *testing.T) {
	store := memStore()
	c, a := seedPair(t, store)
	for _, slot := range []float64{9, 9.5, 10} {
		_, err := store.ToggleEntry("2024-03-06", slot, c.ID, a.ID)
		require.NoError(t, err)
	}
	_, err := store.ToggleEntry("2024-03-08", 14, c.ID, a.ID)
	require.NoError(t, err)
	// Outside the week, must not count.
	_, err = store.ToggleEntry("2024-03-12", 9, c.ID, a.ID)
	require.NoError(t, err)

	cmd, stdout := capture(weekCmd)
	err = runWeek(cmd, store, "2024-03-06", fixedNow)

	assert.NoError(t, err)
	out := stdout.String()
	assert.Contains(t, out, "week 2024-W10")
	assert.Contains(t, out, "2024-03-06   1.5h")
	assert.Contains(t, out, "2024-03-08   0.5h")
	assert.Contains(t, out, "total: 2.0h")
}

func TestWeekMarksFrozenDays(t *testing.T) {
	store := memStore()
	_, err := store.ToggleFreeze("2024-03-05")
	require.NoError(t, err)

	cmd, stdout := capture(weekCmd)
	err = runWeek(cmd, store, "2024-03-06", fixedNow)

	assert.NoError(t, err)
	assert.Contains(t, stdout.String(), "frozen")
}
