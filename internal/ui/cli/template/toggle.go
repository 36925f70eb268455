package template

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/isaacphi/tbprompt/internal/document"
	"github.com/isaacphi/tbprompt/internal/domain"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle FILE PATH [on|off]",
	Short: "Switch a section, component or attribute on or off",
	Long:  "Switch the node at PATH on or off. Without a state the current one is flipped.",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := parsePath(args[1], false)
		if err != nil {
			return err
		}

		if len(args) == 2 {
			return editFile(args[0], func(t *domain.Template) (*domain.Template, error) {
				return document.Toggle(t, path)
			})
		}

		var active bool
		switch strings.ToLower(args[2]) {
		case "on", "true":
			active = true
		case "off", "false":
			active = false
		default:
			return fmt.Errorf("state must be on or off, got %q", args[2])
		}
		return editFile(args[0], func(t *domain.Template) (*domain.Template, error) {
			return document.SetActive(t, path, active)
		})
	},
}
