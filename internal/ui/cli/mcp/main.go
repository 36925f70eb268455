package mcp

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/isaacphi/tbprompt/internal/appState"
	"github.com/isaacphi/tbprompt/internal/mcp"
)

var (
	MCPCmd = &cobra.Command{
		Use:   "mcp",
		Short: "Expose the compiler as MCP tools",
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve MCP tools over stdio",
		Long:  "Answer Model Context Protocol requests on stdin/stdout until interrupted. Logs go to stderr or the configured log file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := appState.Get().Config
			slog.Info("starting MCP server", "platform", cfg.Editor.Platform)
			return mcp.NewServer(cfg.Editor.Platform).Serve(cmd.Context())
		},
	}

	toolsCmd = &cobra.Command{
		Use:   "tools",
		Short: "Display the tools served by mcp serve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := appState.Get().Config
			mcp.NewServer(cfg.Editor.Platform).PrintTools(cmd.OutOrStdout())
			return nil
		},
	}
)

func init() {
	MCPCmd.AddCommand(serveCmd, toolsCmd)
}
