package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/isaacphi/tbprompt/internal/appState"
	"github.com/isaacphi/tbprompt/internal/config"
	"github.com/isaacphi/tbprompt/internal/domain"
	"github.com/isaacphi/tbprompt/internal/ui/cli/ai"
	"github.com/isaacphi/tbprompt/internal/ui/cli/compile"
	configCmd "github.com/isaacphi/tbprompt/internal/ui/cli/config"
	"github.com/isaacphi/tbprompt/internal/ui/cli/edit"
	"github.com/isaacphi/tbprompt/internal/ui/cli/mcp"
	"github.com/isaacphi/tbprompt/internal/ui/cli/schema"
	"github.com/isaacphi/tbprompt/internal/ui/cli/template"
)

var (
	logLevel string
	logFile  string
	model    string
	apiKey   string
	platform string

	maxTokens   int
	temperature float64
)

var rootCmd = &cobra.Command{
	Use:   "tbprompt",
	Short: "Compile structured image prompt templates",
	Long: `tbprompt turns structured prompt templates (sections, components and
attributes) into a single prompt string for image generation services.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	DisableAutoGenTag: true,
}

func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Set up the root command to use this context
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if domain.IsMissingCredentialError(err) {
			fmt.Fprintln(os.Stderr, "Hint: run `tbprompt config apiKey -s` to see where the key is read from.")
		}
		cancel()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set logging level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file path (defaults to stderr)")
	rootCmd.PersistentFlags().StringVarP(&model, "model", "m", "", "Model to use for AI commands (a key under models)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "API key for the active model's provider")
	rootCmd.PersistentFlags().IntVar(&maxTokens, "max-tokens", 0, "Override the active model's maxTokens")
	rootCmd.PersistentFlags().Float64Var(&temperature, "temperature", 0, "Override the active model's temperature")
	rootCmd.PersistentFlags().StringVarP(&platform, "platform", "p", "", "Target platform passed to the compiler")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return appState.Initialize(overrides(cmd))
	}

	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return appState.Cleanup()
	}

	// Remove "completions" command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(
		compile.CompileCmd,
		template.TemplateCmd,
		ai.AICmd,
		schema.SchemaCmd,
		edit.EditCmd,
		mcp.MCPCmd,
		configCmd.ConfigCmd,
	)
}

func overrides(cmd *cobra.Command) *config.RuntimeOverrides {
	o := &config.RuntimeOverrides{}
	if cmd.Flags().Changed("max-tokens") {
		o.MaxTokens = &maxTokens
	}
	if cmd.Flags().Changed("temperature") {
		o.Temperature = &temperature
	}
	if logLevel != "" {
		o.LogLevel = &logLevel
	}
	if logFile != "" {
		o.LogFile = &logFile
	}
	if model != "" {
		o.ActiveModel = &model
	}
	if apiKey != "" {
		o.APIKey = &apiKey
	}
	if platform != "" {
		o.Platform = &platform
	}
	return o
}
