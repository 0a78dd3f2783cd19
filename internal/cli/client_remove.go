package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valery-blanc/timesheet-pal/internal/timesheet"
)

var clientRemoveCmd = LeafCommand{
	Use:     "remove CLIENT",
	Short:   "Delete a client that has no entries",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		return runClientRemove(cmd, store, args[0])
	},
}.Build()

func runClientRemove(cmd *cobra.Command, store *timesheet.Store, ref string) error {
	client, ok, err := store.FindClient(ref)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("unknown client %q", ref)
	}

	removed, err := store.DeleteClient(client.ID)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("client '%s' still has entries; remove them first or mark the client inactive", client.Name)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("client '%s' removed", Primary(client.Name))))
	return nil
}
