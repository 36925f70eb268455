package template

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/isaacphi/tbprompt/internal/document"
	"github.com/isaacphi/tbprompt/internal/shared"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Check that template files parse",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "File\tStatus\tSections\tAttributes")

		failed := 0
		for _, file := range args {
			t, err := shared.LoadTemplate(file)
			if err != nil {
				failed++
				fmt.Fprintf(w, "%s\t%s\t\t\n", file, err)
				continue
			}

			attrs := 0
			for _, n := range document.Walk(t) {
				if n.Depth == 2 {
					attrs++
				}
			}
			fmt.Fprintf(w, "%s\tok\t%d\t%d\n", file, len(t.Sections), attrs)
		}
		w.Flush()

		if failed > 0 {
			return fmt.Errorf("%d of %d templates are invalid", failed, len(args))
		}
		return nil
	},
}
