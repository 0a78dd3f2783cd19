package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "timesheet",
	Short: "A personal timesheet CLI",
}

func init() {
	rootCmd.AddCommand(clientCmd)
	rootCmd.AddCommand(activityCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(dayCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(gridCmd)
	rootCmd.AddCommand(freezeCmd)
	rootCmd.AddCommand(hoursCmd)
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(fillCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.SetHelpFunc(colorizedHelpFunc())
	rootCmd.SilenceUsage = true
}

func Execute() error {
	return rootCmd.Execute()
}
