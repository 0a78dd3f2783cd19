package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/valery-blanc/timesheet-pal/internal/slotutil"
	"github.com/valery-blanc/timesheet-pal/internal/timesheet"
)

var toggleCmd = LeafCommand{
	Use:   "toggle TIME [CLIENT [ACTIVITY]]",
	Short: "Toggle a half-hour slot on or off",
	Args:  cobra.RangeArgs(1, 3),
	StrFlags: []StringFlag{
		{Name: "date", Usage: "date to toggle on (YYYY-MM-DD, default: current view date)"},
	},
	BoolFlags: []BoolFlag{
		{Name: "hour", Usage: "toggle the full hour (both half-hour slots) at once"},
		{Name: "half", Usage: "toggle the :30 half of the hour"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		dateFlag, _ := cmd.Flags().GetString("date")
		fullHour, _ := cmd.Flags().GetBool("hour")
		half, _ := cmd.Flags().GetBool("half")
		clientRef, activityRef := "", ""
		if len(args) > 1 {
			clientRef = args[1]
		}
		if len(args) > 2 {
			activityRef = args[2]
		}
		timeArg := args[0]
		if half && !strings.Contains(timeArg, ":") && !strings.Contains(timeArg, ".") {
			timeArg += ":30"
		}
		return runToggle(cmd, store, dateFlag, timeArg, clientRef, activityRef, fullHour, time.Now)
	},
}.Build()

func runToggle(
	cmd *cobra.Command,
	store *timesheet.Store,
	dateFlag, timeArg, clientRef, activityRef string,
	fullHour bool,
	nowFunc func() time.Time,
) error {
	date, err := resolveDate(store, dateFlag, nowFunc)
	if err != nil {
		return err
	}
	slot, err := slotutil.Parse(timeArg)
	if err != nil {
		return err
	}

	// An occupied slot toggles off regardless of which pair is named, so
	// the references only need to resolve when the slot is empty.
	occupied, err := slotOccupied(store, date, slot, fullHour)
	if err != nil {
		return err
	}
	clientID, activityID := "", ""
	if !occupied {
		client, activity, err := resolvePair(store, clientRef, activityRef)
		if err != nil {
			return err
		}
		clientID, activityID = client.ID, activity.ID
	}

	var changed bool
	if fullHour {
		changed, err = store.ToggleHour(date, slotutil.Hour(slot), clientID, activityID)
	} else {
		changed, err = store.ToggleEntry(date, slot, clientID, activityID)
	}
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	span := fmt.Sprintf("%s %s–%s", date, slotutil.Format(slot), slotutil.End(slot))
	if fullHour {
		span = fmt.Sprintf("%s %02d:00–%s", date, slotutil.Hour(slot), slotutil.Format2400(float64(slotutil.Hour(slot)) + 1))
	}

	if !changed {
		frozen, ferr := store.IsDayFrozen(date)
		if ferr != nil {
			return ferr
		}
		if frozen {
			_, _ = fmt.Fprintf(w, "%s\n", Warning(fmt.Sprintf("%s is frozen; nothing changed", date)))
			return nil
		}
		_, _ = fmt.Fprintf(w, "%s\n", Silent(fmt.Sprintf("%s unchanged", span)))
		return nil
	}

	if occupied {
		_, _ = fmt.Fprintf(w, "%s\n", Text(fmt.Sprintf("%s %s", span, Silent("cleared"))))
		return nil
	}
	client, _, err := store.FindClient(clientID)
	if err != nil {
		return err
	}
	activity, _, err := store.FindActivity(activityID)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "%s\n", Text(fmt.Sprintf("%s → %s / %s", span, Primary(client.Name), activity.Label)))
	return nil
}

// slotOccupied reports whether the slot (or either half of its hour, when
// fullHour is set) already holds an entry.
func slotOccupied(store *timesheet.Store, date string, slot float64, fullHour bool) (bool, error) {
	entries, err := store.EntriesForDate(date)
	if err != nil {
		return false, err
	}
	if fullHour {
		hour := float64(slotutil.Hour(slot))
		_, first := timesheet.EntryAt(entries, date, hour)
		_, second := timesheet.EntryAt(entries, date, hour+0.5)
		return first || second, nil
	}
	_, ok := timesheet.EntryAt(entries, date, slot)
	return ok, nil
}
