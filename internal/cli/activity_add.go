package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valery-blanc/timesheet-pal/internal/timesheet"
)

var activityAddCmd = LeafCommand{
	Use:   "add LABEL SHORTCODE",
	Short: "Create a new activity",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		return runActivityAdd(cmd, store, args[0], args[1])
	},
}.Build()

func runActivityAdd(cmd *cobra.Command, store *timesheet.Store, label, shortCode string) error {
	activity, err := store.AddActivity(label, shortCode)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("activity '%s' [%s] created %s (%s)", Primary(activity.Label), activity.ShortCode, Swatch(activity.Color), Silent(activity.ID))))
	return nil
}
