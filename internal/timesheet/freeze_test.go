package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleFreezeRoundTrip(t *testing.T) {
	s := testStore(t)

	frozen, err := s.IsDayFrozen("2024-03-04")
	require.NoError(t, err)
	assert.False(t, frozen)

	nowFrozen, err := s.ToggleFreeze("2024-03-04")
	require.NoError(t, err)
	assert.True(t, nowFrozen)

	frozen, err = s.IsDayFrozen("2024-03-04")
	require.NoError(t, err)
	assert.True(t, frozen)

	nowFrozen, err = s.ToggleFreeze("2024-03-04")
	require.NoError(t, err)
	assert.False(t, nowFrozen)

	frozen, err = s.IsDayFrozen("2024-03-04")
	require.NoError(t, err)
	assert.False(t, frozen)
}

func TestFreezeRecordsTimestamp(t *testing.T) {
	s := testStore(t)

	_, err := s.ToggleFreeze("2024-03-04")
	require.NoError(t, err)

	days, err := s.FrozenDays()
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, "2024-03-04", days[0].Date)
	assert.NotZero(t, days[0].FrozenAt)
}

func TestFreezeOnlyAffectsItsDate(t *testing.T) {
	s := testStore(t)
	c, a := seedPair(t, s)
	_, err := s.ToggleFreeze("2024-03-04")
	require.NoError(t, err)

	ok, err := s.ToggleEntry("2024-03-05", 9, c.ID, a.ID)

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFreezeKeepsExistingEntries(t *testing.T) {
	s := testStore(t)
	c, a := seedPair(t, s)
	_, err := s.ToggleEntry("2024-03-04", 9, c.ID, a.ID)
	require.NoError(t, err)

	_, err = s.ToggleFreeze("2024-03-04")
	require.NoError(t, err)

	entries, err := s.EntriesForDate("2024-03-04")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestUnfreezeAllowsTogglesAgain(t *testing.T) {
	s := testStore(t)
	c, a := seedPair(t, s)
	_, err := s.ToggleFreeze("2024-03-04")
	require.NoError(t, err)
	_, err = s.ToggleFreeze("2024-03-04")
	require.NoError(t, err)

	ok, err := s.ToggleEntry("2024-03-04", 9, c.ID, a.ID)

	require.NoError(t, err)
	assert.True(t, ok)
}
