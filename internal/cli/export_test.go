package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSVToFile(t *testing.T) {
	store := memStore()
	c, a := seedPair(t, store)
	_, err := store.ToggleEntry("2024-03-06", 9, c.ID, a.ID)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "out.csv")
	cmd, stdout := capture(exportCmd)
	err = runExport(cmd, store, "week", "2024-03-06", "csv", out, "en", fixedNow)

	assert.NoError(t, err)
	assert.Contains(t, stdout.String(), "exported to")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"2024-03-06","Acme","Development","09:00","09:30","0.5"`)
}

func TestExportCSVToStdout(t *testing.T) {
	store := memStore()
	c, a := seedPair(t, store)
	_, err := store.ToggleEntry("2024-03-06", 9, c.ID, a.ID)
	require.NoError(t, err)

	cmd, stdout := capture(exportCmd)
	err = runExport(cmd, store, "day", "2024-03-06", "csv", "-", "en", fixedNow)

	assert.NoError(t, err)
	assert.Contains(t, stdout.String(), `"Date","Client","Activity","Start","End","Duration(h)"`)
}

func TestExportFrenchHeaders(t *testing.T) {
	store := memStore()

	cmd, stdout := capture(exportCmd)
	err := runExport(cmd, store, "all", "2024-03-06", "csv", "-", "fr", fixedNow)

	assert.NoError(t, err)
	assert.Contains(t, stdout.String(), "Heure début")
}

func TestExportPDF(t *testing.T) {
	store := memStore()
	c, a := seedPair(t, store)
	_, err := store.ToggleEntry("2024-03-06", 9, c.ID, a.ID)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "out.pdf")
	cmd, _ := capture(exportCmd)
	err = runExport(cmd, store, "week", "2024-03-06", "pdf", out, "en", fixedNow)

	assert.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, len(data) > 4 && string(data[:4]) == "%PDF")
}

func TestExportUnsupportedFormat(t *testing.T) {
	store := memStore()

	cmd, _ := capture(exportCmd)
	err := runExport(cmd, store, "week", "2024-03-06", "xlsx", "-", "en", fixedNow)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestExportBadScope(t *testing.T) {
	store := memStore()

	cmd, _ := capture(exportCmd)
	err := runExport(cmd, store, "fortnight", "2024-03-06", "csv", "-", "en", fixedNow)

	assert.Error(t, err)
}
