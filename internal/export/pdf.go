package export

import (
	"fmt"
	"sort"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/valery-blanc/timesheet-pal/internal/slotutil"
	"github.com/valery-blanc/timesheet-pal/internal/timesheet"
)

var (
	pdfHeaderColor = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
)

// pdfDay is one day section of the document: the entries sorted by slot and
// the day's total in hours.
type pdfDay struct {
	date       string
	rows       []pdfRow
	totalHours float64
}

type pdfRow struct {
	span     string
	client   string
	activity string
}

// PDF renders the scope's entries as a printable timesheet and returns the
// document bytes. Layout mirrors the CSV content: one line per half-hour
// slot, grouped under day headers with day and grand totals.
func PDF(
	entries []timesheet.TimeEntry,
	clients []timesheet.Client,
	activities []timesheet.Activity,
	scope Scope,
	anchor time.Time,
	title string,
) ([]byte, error) {
	days := buildPDFDays(entries, clients, activities, scope, anchor)

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	start, end := Window(scope, anchor)
	subtitle := fmt.Sprintf("%s – %s", start, end)
	if scope == ScopeAll {
		subtitle = "all entries"
	}

	m.AddRow(14,
		text.NewCol(12, title, props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, subtitle, props.Text{
			Size:  12,
			Color: &pdfMutedColor,
		}),
	)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(4) // spacer

	grandTotal := 0.0
	for _, day := range days {
		grandTotal += day.totalHours

		m.AddRow(8,
			text.NewCol(9, day.date, props.Text{
				Style: fontstyle.Bold,
				Size:  10,
				Color: &pdfHeaderColor,
			}),
			text.NewCol(3, formatHours(day.totalHours), props.Text{
				Style: fontstyle.Bold,
				Size:  10,
				Align: align.Right,
				Color: &pdfHeaderColor,
			}),
		)

		for _, row := range day.rows {
			m.AddRow(5,
				text.NewCol(3, "  "+row.span, props.Text{Size: 8, Color: &pdfMutedColor}),
				text.NewCol(6, row.client, props.Text{Size: 9}),
				text.NewCol(3, row.activity, props.Text{
					Size:  8,
					Align: align.Right,
					Color: &pdfMutedColor,
				}),
			)
		}

		m.AddRow(4) // spacer between days
	}

	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(10,
		text.NewCol(9, "Total", props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Color: &pdfHeaderColor,
		}),
		text.NewCol(3, formatHours(grandTotal), props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Align: align.Right,
			Color: &pdfHeaderColor,
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generating PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// buildPDFDays filters, sorts and groups the entries the same way the CSV
// does, then resolves references per row.
func buildPDFDays(
	entries []timesheet.TimeEntry,
	clients []timesheet.Client,
	activities []timesheet.Activity,
	scope Scope,
	anchor time.Time,
) []pdfDay {
	start, end := Window(scope, anchor)

	var filtered []timesheet.TimeEntry
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

	var days []pdfDay
	for _, e := range filtered {
		client, ok := clientNames[e.ClientID]
		if !ok {
			client = unknownRef
		}
		activity, ok := activityLabels[e.ActivityID]
		if !ok {
			activity = unknownRef
		}

		row := pdfRow{
			span:     slotutil.Format(e.Slot) + "–" + slotutil.End(e.Slot),
			client:   client,
			activity: activity,
		}

		if len(days) == 0 || days[len(days)-1].date != e.Date {
			days = append(days, pdfDay{date: e.Date})
		}
		d := &days[len(days)-1]
		d.rows = append(d.rows, row)
		d.totalHours += 0.5
	}

	return days
}

// formatHours renders an hour count like "7.5h" or "8h".
func formatHours(h float64) string {
	if h == float64(int(h)) {
		return fmt.Sprintf("%dh", int(h))
	}
	return fmt.Sprintf("%.1fh", h)
}
