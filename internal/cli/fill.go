package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valery-blanc/timesheet-pal/internal/slotutil"
	"github.com/valery-blanc/timesheet-pal/internal/timesheet"
	"github.com/valery-blanc/timesheet-pal/internal/workweek"
)

var fillCmd = LeafCommand{
	Use:   "fill SPEC [CLIENT [ACTIVITY]]",
	Short: "Pre-fill a weekly schedule like 'mon-fri 9-17' over a date range",
	Args:  cobra.RangeArgs(1, 3),
	StrFlags: []StringFlag{
		{Name: "from", Usage: "first date to fill (YYYY-MM-DD)"},
		{Name: "to", Usage: "last date to fill (YYYY-MM-DD)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		clientRef, activityRef := "", ""
		if len(args) > 1 {
			clientRef = args[1]
		}
		if len(args) > 2 {
			activityRef = args[2]
		}
		return runFill(cmd, store, args[0], from, to, clientRef, activityRef)
	},
}.Build()

func runFill(cmd *cobra.Command, store *timesheet.Store, spec, from, to, clientRef, activityRef string) error {
	if from == "" || to == "" {
		return fmt.Errorf("--from and --to are required")
	}
	start, err := slotutil.ParseDate(from)
	if err != nil {
		return err
	}
	end, err := slotutil.ParseDate(to)
	if err != nil {
		return err
	}

	plan, err := workweek.Parse(spec)
	if err != nil {
		return err
	}
	client, activity, err := resolvePair(store, clientRef, activityRef)
	if err != nil {
		return err
	}

	fills, err := plan.Expand(start, end)
	if err != nil {
		return err
	}

	filled, skipped := 0, 0
	for _, f := range fills {
		entries, err := store.EntriesForDate(f.Date)
		if err != nil {
			return err
		}
		for _, slot := range f.Slots {
			// Filling must never clear: occupied slots stay as they are.
			if _, ok := timesheet.EntryAt(entries, f.Date, slot); ok {
				skipped++
				continue
			}
			changed, err := store.ToggleEntry(f.Date, slot, client.ID, activity.ID)
			if err != nil {
				return err
			}
			if changed {
				filled++
			} else {
				skipped++
			}
		}
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("%d slots filled, %d skipped (%s / %s)", filled, skipped, Primary(client.Name), activity.Label)))
	return nil
}
