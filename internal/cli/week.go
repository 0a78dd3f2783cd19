package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/valery-blanc/timesheet-pal/internal/export"
	"github.com/valery-blanc/timesheet-pal/internal/slotutil"
	"github.com/valery-blanc/timesheet-pal/internal/timesheet"
)

var weekCmd = LeafCommand{
	Use:   "week",
	Short: "Show tracked hours per day for the week",
	Args:  cobra.NoArgs,
	StrFlags: []StringFlag{
		{Name: "date", Usage: "any date inside the week (YYYY-MM-DD, default: current view date)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		dateFlag, _ := cmd.Flags().GetString("date")
		return runWeek(cmd, store, dateFlag, time.Now)
	},
}.Build()

func runWeek(cmd *cobra.Command, store *timesheet.Store, dateFlag string, nowFunc func() time.Time) error {
	date, err := resolveDate(store, dateFlag, nowFunc)
	if err != nil {
		return err
	}
	anchor, err := slotutil.ParseDate(date)
	if err != nil {
		return err
	}
	start, end := export.Window(export.ScopeWeek, anchor)

	entries, err := store.EntriesForRange(start, end)
	if err != nil {
		return err
	}
	frozen, err := store.FrozenDays()
	if err != nil {
		return err
	}
	frozenDates := make(map[string]bool, len(frozen))
	for _, f := range frozen {
		frozenDates[f.Date] = true
	}

	perDay := make(map[string]int)
	for _, e := range entries {
		perDay[e.Date]++
	}

	w := cmd.OutOrStdout()
	year, week := anchor.ISOWeek()
	_, _ = fmt.Fprintf(w, "%s\n", Info(fmt.Sprintf("week %d-W%02d (%s – %s)", year, week, start, end)))

	startDay, err := slotutil.ParseDate(start)
	if err != nil {
		return err
	}
	total := 0.0
	for i := 0; i < 7; i++ {
		d := startDay.AddDate(0, 0, i)
		ds := slotutil.FormatDate(d)
		hours := float64(perDay[ds]) * 0.5
		total += hours
		line := fmt.Sprintf("%s %s  %4.1fh", d.Format("Mon"), ds, hours)
		if frozenDates[ds] {
			line += " " + Warning("frozen")
		}
		if hours == 0 {
			_, _ = fmt.Fprintf(w, "  %s\n", Silent(line))
		} else {
			_, _ = fmt.Fprintf(w, "  %s\n", Text(line))
		}
	}
	_, _ = fmt.Fprintf(w, "%s\n", Silent(fmt.Sprintf("total: %.1fh", total)))
	return nil
}
