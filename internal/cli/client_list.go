package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valery-blanc/timesheet-pal/internal/timesheet"
)

var clientListCmd = LeafCommand{
	Use:     "list",
	Short:   "List clients, most recently used first",
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	BoolFlags: []BoolFlag{
		{Name: "all", Usage: "include inactive clients"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		all, _ := cmd.Flags().GetBool("all")
		return runClientList(cmd, store, all)
	},
}.Build()

func runClientList(cmd *cobra.Command, store *timesheet.Store, all bool) error {
	clients, err := store.Clients()
	if err != nil {
		return err
	}
	selected, err := store.SelectedClient()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	shown := 0
	for _, c := range clients {
		if !all && !c.Active {
			continue
		}
		shown++
		marker := " "
		if c.ID == selected {
			marker = Primary("*")
		}
		line := fmt.Sprintf("%s %s %s", marker, Swatch(c.Color), Text(c.Name))
		if !c.Active {
			line += " " + Silent("(inactive)")
		}
		if c.Notes != "" {
			line += " " + Silent("– "+c.Notes)
		}
		_, _ = fmt.Fprintf(w, "%s\n", line)
	}
	if shown == 0 {
		_, _ = fmt.Fprintf(w, "%s\n", Silent("no clients yet (run 'timesheet client add NAME')"))
	}
	return nil
}
