package template

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/isaacphi/tbprompt/internal/document"
	"github.com/isaacphi/tbprompt/internal/shared"
)

var (
	nameFlag   string
	sampleFlag bool
	forceFlag  bool
)

var newCmd = &cobra.Command{
	Use:   "new [FILE]",
	Short: "Create a template file",
	Long:  "Create an empty template, or the built-in sample with --sample. Without FILE the template is printed.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t := document.New(nameFlag)
		if sampleFlag {
			t = document.Sample()
			if nameFlag != "" {
				t.MetaData.Name = nameFlag
			}
		}

		file := "-"
		if len(args) > 0 {
			file = args[0]
		}
		if file != "-" && !forceFlag {
			if _, err := os.Stat(file); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", file)
			}
		}

		if err := shared.SaveTemplate(file, t); err != nil {
			return err
		}
		if file != "-" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Created %s\n", file)
		}
		return nil
	},
}

func init() {
	newCmd.Flags().StringVarP(&nameFlag, "name", "n", "", "Template name")
	newCmd.Flags().BoolVar(&sampleFlag, "sample", false, "Start from the built-in sample template")
	newCmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite an existing file")
}
