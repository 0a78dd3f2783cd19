package cli

import "github.com/spf13/cobra"

// BoolFlag declares a boolean flag.
type BoolFlag struct {
	Name    string
	Usage   string
	Default bool
}

// StringFlag declares a string flag.
type StringFlag struct {
	Name    string
	Usage   string
	Default string
}

// LeafCommand declares a command that does work. Each command file defines
// one of these and calls Build; the RunE wrapper opens the store and hands
// off to a run function the tests can drive directly.
type LeafCommand struct {
	Use       string
	Short     string
	Aliases   []string
	Args      cobra.PositionalArgs
	BoolFlags []BoolFlag
	StrFlags  []StringFlag
	RunE      func(cmd *cobra.Command, args []string) error
}

// Build assembles the cobra command and registers its flags.
func (lc LeafCommand) Build() *cobra.Command {
	cmd := &cobra.Command{
		Use:     lc.Use,
		Short:   lc.Short,
		Aliases: lc.Aliases,
		Args:    lc.Args,
		RunE:    lc.RunE,
	}
	for _, f := range lc.BoolFlags {
		cmd.Flags().Bool(f.Name, f.Default, f.Usage)
	}
	for _, f := range lc.StrFlags {
		cmd.Flags().String(f.Name, f.Default, f.Usage)
	}
	return cmd
}

// GroupCommand declares a command that only routes to subcommands.
type GroupCommand struct {
	Use         string
	Short       string
	Subcommands []*cobra.Command
}

// Build assembles the group with its subcommands attached.
func (gc GroupCommand) Build() *cobra.Command {
	cmd := &cobra.Command{
		Use:   gc.Use,
		Short: gc.Short,
	}
	for _, sub := range gc.Subcommands {
		cmd.AddCommand(sub)
	}
	return cmd
}
