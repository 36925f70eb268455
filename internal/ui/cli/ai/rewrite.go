package ai

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/isaacphi/tbprompt/internal/appState"
	"github.com/isaacphi/tbprompt/internal/compiler"
	"github.com/isaacphi/tbprompt/internal/shared"
)

var (
	instructionFlag string
	outFlag         string
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite FILE",
	Short: "Rewrite a template's values with the model",
	Long: `Send the template to the model with an instruction and replace it with the
model's version. The file is only written when the model returns a usable
template. Parameter sections and options are dropped by the model.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appState.Get().Config

		t, err := shared.LoadTemplate(args[0])
		if err != nil {
			return err
		}

		assistant, err := shared.InitializeAssistant(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "Rewriting with %s...\n", cfg.Model().Name)
		next, err := assistant.Rewrite(cmd.Context(), t, instructionFlag)
		if err != nil {
			return err
		}

		dest := args[0]
		if outFlag != "" {
			dest = outFlag
		}
		if err := shared.SaveTemplate(dest, next); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), compiler.Compile(next, cfg.Editor.Platform))
		return nil
	},
}

func init() {
	rewriteCmd.Flags().StringVarP(&instructionFlag, "instruction", "i", "", "What the model should do (defaults to editor.rewriteInstruction)")
	rewriteCmd.Flags().StringVarP(&outFlag, "out", "o", "", "Write the rewritten template here instead of FILE")
}
