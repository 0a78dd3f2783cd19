package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/valery-blanc/timesheet-pal/internal/timesheet"
)

var statusCmd = LeafCommand{
	Use:   "status",
	Short: "Show the current selection and today's totals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		return runStatus(cmd, store, time.Now)
	},
}.Build()

func runStatus(cmd *cobra.Command, store *timesheet.Store, nowFunc func() time.Time) error {
	w := cmd.OutOrStdout()

	date, err := resolveDate(store, "", nowFunc)
	if err != nil {
		return err
	}

	clientID, err := store.SelectedClient()
	if err != nil {
		return err
	}
	clientName := "none"
	if clientID != "" {
		if c, ok, err := store.FindClient(clientID); err != nil {
			return err
		} else if ok {
			clientName = c.Name
		}
	}

	activityID, err := store.SelectedActivity()
	if err != nil {
		return err
	}
	activityLabel := "none"
	if activityID != "" {
		if a, ok, err := store.FindActivity(activityID); err != nil {
			return err
		} else if ok {
			activityLabel = a.Label
		}
	}

	entries, err := store.EntriesForDate(date)
	if err != nil {
		return err
	}
	frozen, err := store.IsDayFrozen(date)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "%s  %s\n", Silent("Date:"), Primary(date))
	_, _ = fmt.Fprintf(w, "%s  %s\n", Silent("Client:"), Text(clientName))
	_, _ = fmt.Fprintf(w, "%s  %s\n", Silent("Activity:"), Text(activityLabel))
	_, _ = fmt.Fprintf(w, "%s  %s\n", Silent("Tracked:"), Text(fmt.Sprintf("%.1fh", float64(len(entries))*0.5)))
	if frozen {
		_, _ = fmt.Fprintf(w, "%s  %s\n", Silent("State:"), Warning("frozen"))
	}
	return nil
}
