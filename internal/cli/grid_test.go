package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valery-blanc/timesheet-pal/internal/timesheet"
)

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestGrid(t *testing.T, store *timesheet.Store, date string) gridModel {
	t.Helper()
	require.NoError(t, store.SetWorkHours(timesheet.WorkHours{Start: 9, End: 11}))
	m, err := newGridModel(store, date, timesheet.DefaultWorkHours)
	require.NoError(t, err)
	return m
}

func TestGridToggleUnderCursor(t *testing.T) {
	store := memStore()
	c, a := seedPair(t, store)
	require.NoError(t, store.SetSelectedClient(c.ID))
	require.NoError(t, store.SetSelectedActivity(a.ID))
	m := newTestGrid(t, store, "2024-03-06")

	next, _ := m.Update(keyMsg(" "))
	m = next.(gridModel)

	entries, err := store.EntriesForDate("2024-03-06")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 9.0, entries[0].Slot)
	assert.Contains(t, m.View(), "Acme / Development")
}

func TestGridCursorMoves(t *testing.T) {
	store := memStore()
	m := newTestGrid(t, store, "2024-03-06")

	next, _ := m.Update(keyMsg("j"))
	m = next.(gridModel)
	assert.Equal(t, 1, m.cursor)

	next, _ = m.Update(keyMsg("k"))
	m = next.(gridModel)
	assert.Equal(t, 0, m.cursor)

	// Cannot move above the first slot.
	next, _ = m.Update(keyMsg("k"))
	m = next.(gridModel)
	assert.Equal(t, 0, m.cursor)
}

func TestGridShiftDayUpdatesViewDate(t *testing.T) {
	store := memStore()
	m := newTestGrid(t, store, "2024-03-06")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(gridModel)

	assert.Equal(t, "2024-03-07", m.date)
	viewDate, err := store.CurrentViewDate()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-07", viewDate)
}

func TestGridFrozenDayShowsError(t *testing.T) {
	store := memStore()
	c, a := seedPair(t, store)
	require.NoError(t, store.SetSelectedClient(c.ID))
	require.NoError(t, store.SetSelectedActivity(a.ID))
	_, err := store.ToggleFreeze("2024-03-06")
	require.NoError(t, err)
	m := newTestGrid(t, store, "2024-03-06")

	next, _ := m.Update(keyMsg(" "))
	m = next.(gridModel)

	entries, err := store.EntriesForDate("2024-03-06")
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Contains(t, m.View(), "frozen")
}

func TestGridHourToggleFillsBothHalves(t *testing.T) {
	store := memStore()
	c, a := seedPair(t, store)
	require.NoError(t, store.SetSelectedClient(c.ID))
	require.NoError(t, store.SetSelectedActivity(a.ID))
	m := newTestGrid(t, store, "2024-03-06")

	next, _ := m.Update(keyMsg("h"))
	m = next.(gridModel)

	entries, err := store.EntriesForDate("2024-03-06")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, 2, strings.Count(m.View(), "Acme / Development"))
}

func TestGridViewMarksEmptySlots(t *testing.T) {
	store := memStore()
	m := newTestGrid(t, store, "2024-03-06")

	view := m.View()
	assert.Contains(t, view, "09:00–09:30")
	assert.Contains(t, view, "11:30–12:00")
	assert.Contains(t, view, "2024-03-06")
}

func TestGridWindowFromConfigWhenNoPreferenceStored(t *testing.T) {
	store := memStore()

	m, err := newGridModel(store, "2024-03-06", timesheet.WorkHours{Start: 9, End: 11})
	require.NoError(t, err)

	slots := m.visibleSlots()
	require.NotEmpty(t, slots)
	assert.Equal(t, 9.0, slots[0])
	assert.Equal(t, 11.5, slots[len(slots)-1])
}

func TestGridQuit(t *testing.T) {
	store := memStore()
	m := newTestGrid(t, store, "2024-03-06")

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
