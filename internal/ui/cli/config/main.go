package config

import (
	"github.com/spf13/cobra"

	"github.com/isaacphi/tbprompt/internal/appState"
)

var (
	includeSources bool

	ConfigCmd = &cobra.Command{
		Use:   "config [prefix]",
		Short: "View configuration",
		Long:  "Read configuration. If prefix is included, only show configuration under that path. E.g. tbprompt config models.gemini",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := appState.Get().Config

			var prefix string
			if len(args) > 0 {
				prefix = args[0]
			}

			cfg.PrintConfig(cmd.OutOrStdout(), prefix, includeSources)

			return nil
		},
	}
)

func init() {
	ConfigCmd.Flags().BoolVarP(&includeSources, "include-sources", "s", false, "Show source file for each configuration value")
}
