package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valery-blanc/timesheet-pal/internal/timesheet"
)

var clientAddCmd = LeafCommand{
	Use:   "add NAME",
	Short: "Create a new client",
	Args:  cobra.ExactArgs(1),
	StrFlags: []StringFlag{
		{Name: "notes", Usage: "free-form notes for the client"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		notes, _ := cmd.Flags().GetString("notes")
		return runClientAdd(cmd, store, args[0], notes)
	},
}.Build()

func runClientAdd(cmd *cobra.Command, store *timesheet.Store, name, notes string) error {
	client, err := store.AddClient(name, notes)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("client '%s' created %s (%s)", Primary(client.Name), Swatch(client.Color), Silent(client.ID))))
	return nil
}
