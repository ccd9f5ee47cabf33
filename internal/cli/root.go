package cli

import (
	"github.com/spf13/cobra"

	"github.com/cheets/pubg-observer-generator/pkg/buildinfo"
)

// newRootCmd creates the bare root command without subcommands.
//
// The root attaches the CLI's logger to the command context so every
// subcommand can retrieve it with loggerFromContext, even when invoked
// through cobra's own plumbing (completion, help).
func newRootCmd(c *CLI) *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Observergen builds PUBG observer overlay bundles",
		Long: `Observergen turns a division's team roster and logos into the asset bundle
a PUBG esports observer overlay consumes: numbered team icons, a TeamInfo.csv
manifest with unique short names and accent colors, and a distributable zip.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	return root
}
