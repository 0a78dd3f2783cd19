package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/valery-blanc/timesheet-pal/internal/slotutil"
	"github.com/valery-blanc/timesheet-pal/internal/timesheet"
)

var dayCmd = LeafCommand{
	Use:   "day",
	Short: "Show a day's assignments, merged to full hours where possible",
	Args:  cobra.NoArgs,
	StrFlags: []StringFlag{
		{Name: "date", Usage: "date to show (YYYY-MM-DD, default: current view date)"},
	},
	BoolFlags: []BoolFlag{
		{Name: "all", Usage: "show all 24 hours instead of the work-hours window"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg, err := openStore()
		if err != nil {
			return err
		}
		dateFlag, _ := cmd.Flags().GetString("date")
		all, _ := cmd.Flags().GetBool("all")
		return runDay(cmd, store, dateFlag, all, configWindow(cfg), time.Now)
	},
}.Build()

func runDay(cmd *cobra.Command, store *timesheet.Store, dateFlag string, allHours bool, fallback timesheet.WorkHours, nowFunc func() time.Time) error {
	date, err := resolveDate(store, dateFlag, nowFunc)
	if err != nil {
		return err
	}
	entries, err := store.EntriesForDate(date)
	if err != nil {
		return err
	}
	frozen, err := store.IsDayFrozen(date)
	if err != nil {
		return err
	}
	window, err := store.WorkHoursOr(fallback)
	if err != nil {
		return err
	}
	if allHours {
		window = timesheet.WorkHours{Start: 0, End: 23}
	}

	names, err := pairNames(store)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	header := Info(date)
	if frozen {
		header += " " + Warning("(frozen)")
	}
	_, _ = fmt.Fprintf(w, "%s\n", header)

	for hour := window.Start; hour <= window.End; hour++ {
		if merged, ok := timesheet.MergedHour(entries, date, hour); ok {
			span := fmt.Sprintf("%02d:00–%s", hour, slotutil.Format2400(float64(hour)+1))
			_, _ = fmt.Fprintf(w, "  %s  %s\n", Silent(span), Text(names.line(merged)))
			continue
		}
		for _, slot := range []float64{float64(hour), float64(hour) + 0.5} {
			e, ok := timesheet.EntryAt(entries, date, slot)
			if !ok {
				continue
			}
			span := fmt.Sprintf("%s–%s", slotutil.Format(slot), slotutil.End(slot))
			_, _ = fmt.Fprintf(w, "  %s  %s\n", Silent(span), Text(names.line(e)))
		}
	}

	total := float64(len(entries)) * 0.5
	_, _ = fmt.Fprintf(w, "%s\n", Silent(fmt.Sprintf("total: %.1fh", total)))
	return nil
}

// nameIndex resolves entry references to display names, with "Unknown" for
// dangling ids so a damaged collection still renders.
type nameIndex struct {
	clients    map[string]string
	activities map[string]string
}

func pairNames(store *timesheet.Store) (nameIndex, error) {
	clients, err := store.Clients()
	if err != nil {
		return nameIndex{}, err
	}
	activities, err := store.Activities()
	if err != nil {
		return nameIndex{}, err
	}
	idx := nameIndex{
		clients:    make(map[string]string, len(clients)),
		activities: make(map[string]string, len(activities)),
	}
	for _, c := range clients {
		idx.clients[c.ID] = c.Name
	}
	for _, a := range activities {
		idx.activities[a.ID] = a.Label
	}
	return idx, nil
}

func (idx nameIndex) line(e timesheet.TimeEntry) string {
	client, ok := idx.clients[e.ClientID]
	if !ok {
		client = "Unknown"
	}
	activity, ok := idx.activities[e.ActivityID]
	if !ok {
		activity = "Unknown"
	}
	return fmt.Sprintf("%s / %s", client, activity)
}
