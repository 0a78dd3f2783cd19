package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valery-blanc/timesheet-pal/internal/timesheet"
)

var clientEditCmd = LeafCommand{
	Use:   "edit CLIENT",
	Short: "Edit a client's name, color, notes or active flag",
	Args:  cobra.ExactArgs(1),
	StrFlags: []StringFlag{
		{Name: "name", Usage: "new name"},
		{Name: "color", Usage: "new palette color token"},
		{Name: "notes", Usage: "new notes"},
		{Name: "active", Usage: "set active state (true|false)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		upd, err := clientUpdateFromFlags(cmd)
		if err != nil {
			return err
		}
		return runClientEdit(cmd, store, args[0], upd)
	},
}.Build()

// clientUpdateFromFlags builds an update from the flags the user actually
// passed, leaving untouched fields nil.
func clientUpdateFromFlags(cmd *cobra.Command) (timesheet.ClientUpdate, error) {
	var upd timesheet.ClientUpdate
	if cmd.Flags().Changed("name") {
		v, _ := cmd.Flags().GetString("name")
		upd.Name = &v
	}
	if cmd.Flags().Changed("color") {
		v, _ := cmd.Flags().GetString("color")
		upd.Color = &v
	}
	if cmd.Flags().Changed("notes") {
		v, _ := cmd.Flags().GetString("notes")
		upd.Notes = &v
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
			return timesheet.ClientUpdate{}, fmt.Errorf("invalid --active value %q (expected true or false)", v)
		}
	}
	return upd, nil
}

func runClientEdit(cmd *cobra.Command, store *timesheet.Store, ref string, upd timesheet.ClientUpdate) error {
	client, ok, err := store.FindClient(ref)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("unknown client %q", ref)
	}

	if err := store.UpdateClient(client.ID, upd); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("client '%s' updated", Primary(client.Name))))
	return nil
}
