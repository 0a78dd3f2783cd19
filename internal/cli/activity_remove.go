package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valery-blanc/timesheet-pal/internal/timesheet"
)

var activityRemoveCmd = LeafCommand{
	Use:     "remove ACTIVITY",
	Short:   "Delete an activity that has no entries",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		return runActivityRemove(cmd, store, args[0])
	},
}.Build()

func runActivityRemove(cmd *cobra.Command, store *timesheet.Store, ref string) error {
	activity, ok, err := store.FindActivity(ref)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("unknown activity %q", ref)
	}

	removed, err := store.DeleteActivity(activity.ID)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("activity '%s' still has entries; remove them first or mark the activity inactive", activity.Label)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("activity '%s' removed", Primary(activity.Label))))
	return nil
}
