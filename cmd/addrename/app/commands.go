package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/addrename/cmd/addrename/cmd/groups"
	"github.com/agentstation/addrename/cmd/addrename/cmd/list"
	"github.com/agentstation/addrename/cmd/addrename/cmd/run"
	"github.com/agentstation/addrename/cmd/addrename/cmd/validate"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(run.NewCommand(a))
	rootCmd.AddCommand(validate.NewCommand(a))

	rootCmd.AddCommand(list.NewCommand(a))
	rootCmd.AddCommand(groups.NewCommand(a))

	rootCmd.AddCommand(a.NewVersionCommand())
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("addrename %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
