package template

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/isaacphi/tbprompt/internal/document"
	"github.com/isaacphi/tbprompt/internal/domain"
)

var setCmd = &cobra.Command{
	Use:   "set FILE PATH VALUE...",
	Short: "Set an attribute value",
	Long: `Set the value of an attribute. The value keeps the attribute's current shape:
list values are split on commas, numbers and booleans must parse. Several
VALUE arguments always produce a list.`,
	Args: cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := parsePath(args[1], true)
		if err != nil {
			return err
		}
		values := args[2:]

		return editFile(args[0], func(t *domain.Template) (*domain.Template, error) {
			if len(values) > 1 {
				return document.SetValue(t, path, domain.List(values...))
			}
			attr, err := document.Lookup(t, path)
			if err != nil {
				return nil, err
			}
			v, err := document.ValueFromInput(attr, values[0])
			if err != nil {
				return nil, err
			}
			return document.SetValue(t, path, v)
		})
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear FILE PATH",
	Short: "Clear an attribute value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := parsePath(args[1], true)
		if err != nil {
			return err
		}
		return editFile(args[0], func(t *domain.Template) (*domain.Template, error) {
			return document.ClearValue(t, path)
		})
	},
}

var weightCmd = &cobra.Command{
	Use:   "weight FILE PATH WEIGHT|off",
	Short: "Set or disable the weight of an attribute",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := parsePath(args[1], true)
		if err != nil {
			return err
		}

		var weight *float64
		if !strings.EqualFold(args[2], "off") {
			w, err := strconv.ParseFloat(args[2], 64)
			if err != nil || w < 0 {
				return fmt.Errorf("weight must be a non-negative number or \"off\", got %q", args[2])
			}
			weight = &w
		}

		return editFile(args[0], func(t *domain.Template) (*domain.Template, error) {
			return document.SetWeight(t, path, weight)
		})
	},
}
