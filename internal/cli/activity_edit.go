package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valery-blanc/timesheet-pal/internal/timesheet"
)

var activityEditCmd = LeafCommand{
	Use:   "edit ACTIVITY",
	Short: "Edit an activity's label, short code, color or active flag",
	Args:  cobra.ExactArgs(1),
	StrFlags: []StringFlag{
		{Name: "label", Usage: "new label"},
		{Name: "code", Usage: "new short code (1-3 characters)"},
		{Name: "color", Usage: "new palette color token"},
		{Name: "active", Usage: "set active state (true|false)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		upd, err := activityUpdateFromFlags(cmd)
		if err != nil {
			return err
		}
		return runActivityEdit(cmd, store, args[0], upd)
	},
}.Build()

func activityUpdateFromFlags(cmd *cobra.Command) (timesheet.ActivityUpdate, error) {
	var upd timesheet.ActivityUpdate
	if cmd.Flags().Changed("label") {
		v, _ := cmd.Flags().GetString("label")
		upd.Label = &v
	}
	if cmd.Flags().Changed("code") {
		v, _ := cmd.Flags().GetString("code")
		upd.ShortCode = &v
	}
	if cmd.Flags().Changed("color") {
		v, _ := cmd.Flags().GetString("color")
		upd.Color = &v
	}
	if cmd.Flags().Changed("active") {
		v, _ := cmd.Flags().GetString("active")
		switch v {
		case "true":
			b := true
			upd.Active = &b
		case "false":
			b := false
			upd.Active = &b
		default:
			return timesheet.ActivityUpdate{}, fmt.Errorf("invalid --active value %q (expected true or false)", v)
		}
	}
	return upd, nil
}

func runActivityEdit(cmd *cobra.Command, store *timesheet.Store, ref string, upd timesheet.ActivityUpdate) error {
	activity, ok, err := store.FindActivity(ref)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("unknown activity %q", ref)
	}

	if err := store.UpdateActivity(activity.ID, upd); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("activity '%s' updated", Primary(activity.Label))))
	return nil
}
