package cli

import "github.com/spf13/cobra"

var clientCmd = GroupCommand{
	Use:   "client",
	Short: "Manage clients",
	Subcommands: []*cobra.Command{
		clientAddCmd,
		clientListCmd,
		clientEditCmd,
		clientRemoveCmd,
	},
}.Build()
