package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScope(t *testing.T) {
	for _, s := range []string{"day", "week", "month", "all"} {
		got, err := ParseScope(s)
		require.NoError(t, err)
		assert.Equal(t, Scope(s), got)
	}

	_, err := ParseScope("year")
	assert.Error(t, err)
}

func TestWindowDay(t *testing.T) {
	start, end := Window(ScopeDay, time.Date(2024, 3, 6, 15, 30, 0, 0, time.UTC))

	assert.Equal(t, "2024-03-06", start)
	assert.Equal(t, "2024-03-06", end)
}

func TestWindowWeekMondayStart(t *testing.T) {
	// 2024-03-06 is a Wednesday; its ISO week runs Mon 04 .. Sun 10.
	start, end := Window(ScopeWeek, time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "2024-03-04", start)
	assert.Equal(t, "2024-03-10", end)
}

func TestWindowWeekAnchoredOnSunday(t *testing.T) {
	// Sunday belongs to the week that started the previous Monday.
	start, end := Window(ScopeWeek, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "2024-03-04", start)
	assert.Equal(t, "2024-03-10", end)
}

func TestWindowMonth(t *testing.T) {
	start, end := Window(ScopeMonth, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "2024-02-01", start)
	assert.Equal(t, "2024-02-29", end)
}

func TestWindowAll(t *testing.T) {
	start, end := Window(ScopeAll, time.Now())

	assert.Equal(t, "0000-00-00", start)
	assert.Equal(t, "9999-99-99", end)
	assert.Less(t, start, "2024-01-01")
	assert.Greater(t, end, "2024-01-01")
}

func TestFilename(t *testing.T) {
	d := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "timesheet-2024-03-06.csv", Filename(ScopeDay, d, "csv"))
	assert.Equal(t, "timesheet-2024-W10.csv", Filename(ScopeWeek, d, "csv"))
	assert.Equal(t, "timesheet-2024-03.csv", Filename(ScopeMonth, d, "csv"))
	assert.Equal(t, "timesheet-all.pdf", Filename(ScopeAll, d, "pdf"))
}
