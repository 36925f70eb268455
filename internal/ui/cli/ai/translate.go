package ai

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/isaacphi/tbprompt/internal/appState"
	"github.com/isaacphi/tbprompt/internal/clipboard"
	"github.com/isaacphi/tbprompt/internal/shared"
)

var copyFlag bool

var translateCmd = &cobra.Command{
	Use:   "translate [TEXT...]",
	Short: "Translate between Korean and English",
	Long:  "Translate Korean text to English or English text to Korean. Without TEXT the text is read from stdin.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appState.Get().Config

		text := strings.Join(args, " ")
		if len(args) == 0 {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			text = string(data)
		}
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("nothing to translate")
		}

		assistant, err := shared.InitializeAssistant(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		result, err := assistant.Translate(cmd.Context(), text, func(chunk string) error {
			_, err := io.WriteString(out, chunk)
			return err
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(out)

		if copyFlag || cfg.Editor.Copy {
			if err := clipboard.Copy(result); err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard")
		}
		return nil
	},
}

func init() {
	translateCmd.Flags().BoolVarP(&copyFlag, "copy", "c", false, "Copy the translation to the clipboard")
}
