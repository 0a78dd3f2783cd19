package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valery-blanc/timesheet-pal/internal/timesheet"
)

var activityListCmd = LeafCommand{
	Use:     "list",
	Short:   "List activities in display order",
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	BoolFlags: []BoolFlag{
		{Name: "all", Usage: "include inactive activities"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		all, _ := cmd.Flags().GetBool("all")
		return runActivityList(cmd, store, all)
	},
}.Build()

func runActivityList(cmd *cobra.Command, store *timesheet.Store, all bool) error {
	activities, err := store.Activities()
	if err != nil {
		return err
	}
	selected, err := store.SelectedActivity()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	shown := 0
	for _, a := range activities {
		if !all && !a.Active {
			continue
		}
		shown++
		marker := " "
		if a.ID == selected {
			marker = Primary("*")
		}
		line := fmt.Sprintf("%s %s %s %s", marker, Swatch(a.Color), Text(a.Label), Silent("["+a.ShortCode+"]"))
		if !a.Active {
			line += " " + Silent("(inactive)")
		}
		_, _ = fmt.Fprintf(w, "%s\n", line)
	}
	if shown == 0 {
		_, _ = fmt.Fprintf(w, "%s\n", Silent("no activities yet (run 'timesheet activity add LABEL SHORTCODE')"))
	}
	return nil
}
