package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valery-blanc/timesheet-pal/internal/timesheet"
)

var selectCmd = GroupCommand{
	Use:   "select",
	Short: "Pick the client or activity new entries default to",
	Subcommands: []*cobra.Command{
		selectClientCmd,
		selectActivityCmd,
	},
}.Build()

var selectClientCmd = LeafCommand{
	Use:   "client [CLIENT]",
	Short: "Select the default client",
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		ref := ""
		if len(args) > 0 {
			ref = args[0]
		}
		return runSelectClient(cmd, store, ref, NewSelectFunc())
	},
}.Build()

var selectActivityCmd = LeafCommand{
	Use:   "activity [ACTIVITY]",
	Short: "Select the default activity",
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		ref := ""
		if len(args) > 0 {
			ref = args[0]
		}
		return runSelectActivity(cmd, store, ref, NewSelectFunc())
	},
}.Build()

func runSelectClient(cmd *cobra.Command, store *timesheet.Store, ref string, pick SelectFunc) error {
	var client timesheet.Client
	if ref != "" {
		c, ok, err := store.FindClient(ref)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("unknown client %q", ref)
		}
		client = c
	} else {
		clients, err := store.Clients()
		if err != nil {
			return err
		}
		active := clients[:0:0]
		for _, c := range clients {
			if c.Active {
				active = append(active, c)
			}
		}
		if len(active) == 0 {
			return fmt.Errorf("no active clients to select from")
		}
		options := make([]string, len(active))
		for i, c := range active {
			options[i] = c.Name
		}
		idx, err := pick("Select client", options)
		if err != nil {
			return err
		}
		client = active[idx]
	}

	if err := store.SetSelectedClient(client.ID); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("client '%s' selected", Primary(client.Name))))
	return nil
}

func runSelectActivity(cmd *cobra.Command, store *timesheet.Store, ref string, pick SelectFunc) error {
	var activity timesheet.Activity
	if ref != "" {
		a, ok, err := store.FindActivity(ref)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("unknown activity %q", ref)
		}
		activity = a
	} else {
		activities, err := store.Activities()
		if err != nil {
			return err
		}
		active := activities[:0:0]
		for _, a := range activities {
			if a.Active {
				active = append(active, a)
			}
		}
		if len(active) == 0 {
			return fmt.Errorf("no active activities to select from")
		}
		options := make([]string, len(active))
		for i, a := range active {
			options[i] = fmt.Sprintf("%s [%s]", a.Label, a.ShortCode)
		}
		idx, err := pick("Select activity", options)
		if err != nil {
			return err
		}
		activity = active[idx]
	}

	if err := store.SetSelectedActivity(activity.ID); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("activity '%s' selected", Primary(activity.Label))))
	return nil
}
