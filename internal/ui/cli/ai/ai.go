package ai

import (
	"github.com/spf13/cobra"
)

var AICmd = &cobra.Command{
	Use:   "ai",
	Short: "Rewrite templates and translate text with the configured model",
	Long: `Rewrite templates and translate text with the active model (see
"tbprompt config models"). The API key comes from --api-key, the apiKey
setting or the provider's environment variable.`,
}

func init() {
	AICmd.AddCommand(rewriteCmd, translateCmd)
}
