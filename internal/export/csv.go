package export

import (
	"sort"
	"strings"
	"time"

	"github.com/valery-blanc/timesheet-pal/internal/slotutil"
	"github.com/valery-blanc/timesheet-pal/internal/timesheet"
)

// DefaultHeaders is the canonical CSV header row.
var DefaultHeaders = []string{"Date", "Client", "Activity", "Start", "End", "Duration(h)"}

// FrenchHeaders reproduces the header labels the app originally shipped
// with.
var FrenchHeaders = []string{"Date", "Client", "Activité", "Heure début", "Heure fin", "Durée (h)"}

// unknownRef is rendered when an entry's client or activity cannot be
// resolved. The invariants make that impossible, but the exporter must never
// fail on data it is handed.
const unknownRef = "Unknown"

// utf8BOM prefixes the output so spreadsheet software detects the encoding.
const utf8BOM = "\ufeff"

// CSV serializes the entries falling inside the scope's window to the
// canonical CSV form: BOM-prefixed UTF-8, one all-quoted row per entry,
// LF-separated, sorted by date then slot. Embedded double quotes are not
// escaped; that is a documented limitation of the format, not an error.
func CSV(
	entries []timesheet.TimeEntry,
	clients []timesheet.Client,
	activities []timesheet.Activity,
	scope Scope,
	anchor time.Time,
	headers []string,
) []byte {
	if headers == nil {
		headers = DefaultHeaders
	}

	start, end := Window(scope, anchor)

	filtered := make([]timesheet.TimeEntry, 0, len(entries))
	for _, e := range entries {
		if e.Date >= start && e.Date <= end {
			filtered = append(filtered, e)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Date != filtered[j].Date {
			return filtered[i].Date < filtered[j].Date
		}
		return filtered[i].Slot < filtered[j].Slot
	})

	clientNames := make(map[string]string, len(clients))
	for _, c := range clients {
		clientNames[c.ID] = c.Name
	}
	activityLabels := make(map[string]string, len(activities))
	for _, a := range activities {
		activityLabels[a.ID] = a.Label
	}

	var b strings.Builder
	b.WriteString(utf8BOM)
	writeRow(&b, headers)
	for _, e := range filtered {
		client, ok := clientNames[e.ClientID]
		if !ok {
			client = unknownRef
		}
		activity, ok := activityLabels[e.ActivityID]
		if !ok {
			activity = unknownRef
		}
		writeRow(&b, []string{
			e.Date,
			client,
			activity,
			slotutil.Format(e.Slot),
			slotutil.End(e.Slot),
			"0.5",
		})
	}

	return []byte(b.String())
}

// writeRow emits one comma-separated line with every field double-quoted.
func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(f)
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
