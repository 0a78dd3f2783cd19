package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valery-blanc/timesheet-pal/internal/timesheet"
)

var activityReorderCmd = LeafCommand{
	Use:   "reorder ACTIVITY...",
	Short: "Set the display order of all activities",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		return runActivityReorder(cmd, store, args)
	},
}.Build()

func runActivityReorder(cmd *cobra.Command, store *timesheet.Store, refs []string) error {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		activity, ok, err := store.FindActivity(ref)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("unknown activity %q", ref)
		}
		ids = append(ids, activity.ID)
	}

	if err := store.ReorderActivities(ids); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("%d activities reordered", len(ids))))
	return nil
}
