package template

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/isaacphi/tbprompt/internal/appState"
	"github.com/isaacphi/tbprompt/internal/document"
	"github.com/isaacphi/tbprompt/internal/shared"
)

var (
	rawFlag   bool
	widthFlag int
)

var showCmd = &cobra.Command{
	Use:   "show FILE",
	Short: "Show a template as a table with its compiled prompt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := shared.LoadTemplate(args[0])
		if err != nil {
			return err
		}

		md := document.Markdown(t, appState.Get().Config.Editor.Platform)
		if rawFlag {
			fmt.Fprint(cmd.OutOrStdout(), md)
			return nil
		}

		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(widthFlag),
		)
		if err != nil {
			return fmt.Errorf("failed to create renderer: %w", err)
		}
		out, err := renderer.Render(md)
		if err != nil {
			return fmt.Errorf("failed to render template: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&rawFlag, "raw", false, "Print the markdown without rendering it")
	showCmd.Flags().IntVar(&widthFlag, "width", 100, "Word wrap width")
}
