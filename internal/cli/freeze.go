package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/valery-blanc/timesheet-pal/internal/timesheet"
)

var freezeCmd = LeafCommand{
	Use:   "freeze",
	Short: "Freeze or unfreeze a day",
	Args:  cobra.NoArgs,
	StrFlags: []StringFlag{
		{Name: "date", Usage: "date to freeze (YYYY-MM-DD, default: current view date)"},
	},
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "unfreeze without confirmation"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		dateFlag, _ := cmd.Flags().GetString("date")
		yes, _ := cmd.Flags().GetBool("yes")
		confirm := NewConfirmFunc()
		if yes {
			confirm = AlwaysYes()
		}
		return runFreeze(cmd, store, dateFlag, confirm, time.Now)
	},
}.Build()

func runFreeze(cmd *cobra.Command, store *timesheet.Store, dateFlag string, confirm ConfirmFunc, nowFunc func() time.Time) error {
	date, err := resolveDate(store, dateFlag, nowFunc)
	if err != nil {
		return err
	}

	frozen, err := store.IsDayFrozen(date)
	if err != nil {
		return err
	}
	if frozen {
		ok, err := confirm(fmt.Sprintf("Unfreeze %s? Its entries become editable again.", date))
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Silent(fmt.Sprintf("%s stays frozen", date)))
			return nil
		}
	}

	nowFrozen, err := store.ToggleFreeze(date)
	if err != nil {
		return err
	}

	if nowFrozen {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("%s %s", Primary(date), "frozen")))
	} else {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("%s %s", Primary(date), "unfrozen")))
	}
	return nil
}
