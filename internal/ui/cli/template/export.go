package template

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/isaacphi/tbprompt/internal/document"
	"github.com/isaacphi/tbprompt/internal/shared"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export FILE",
	Short: "Export a template without Korean fields and options",
	Long:  "Print the template with every *_ko field and every options list removed, for sharing with tools that only need English values.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := shared.ReadTemplateFile(args[0])
		if err != nil {
			return err
		}
		data, err := document.ExportFile(args[0], raw)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		data = append(data, '\n')

		if exportOut == "" || exportOut == "-" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(exportOut, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOut, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported to %s\n", exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Write the export to a file instead of stdout")
}
