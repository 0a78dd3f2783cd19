package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/valery-blanc/timesheet-pal/internal/timesheet"
)

var hoursCmd = LeafCommand{
	Use:   "hours [START END]",
	Short: "Show or set the work-hours display window",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg, err := openStore()
		if err != nil {
			return err
		}
		return runHours(cmd, store, configWindow(cfg), args)
	},
}.Build()

func runHours(cmd *cobra.Command, store *timesheet.Store, fallback timesheet.WorkHours, args []string) error {
	w := cmd.OutOrStdout()

	if len(args) == 0 {
		window, err := store.WorkHoursOr(fallback)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "%s  %s\n", Silent("Work hours:"), Primary(fmt.Sprintf("%02d:00–%02d:00", window.Start, window.End+1)))
		return nil
	}
	if len(args) != 2 {
		return fmt.Errorf("pass both START and END, or neither")
	}

	start, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid start hour %q", args[0])
	}
	end, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid end hour %q", args[1])
	}

	window := timesheet.WorkHours{Start: start, End: end}
	if err := store.SetWorkHours(window); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "%s\n", Text(fmt.Sprintf("work hours set to %s", Primary(fmt.Sprintf("%02d:00–%02d:00", start, end+1)))))
	return nil
}
