package cli

import "github.com/spf13/cobra"

var activityCmd = GroupCommand{
	Use:   "activity",
	Short: "Manage activities",
	Subcommands: []*cobra.Command{
		activityAddCmd,
		activityListCmd,
		activityEditCmd,
		activityRemoveCmd,
		activityReorderCmd,
	},
}.Build()
