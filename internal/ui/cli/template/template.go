package template

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/isaacphi/tbprompt/internal/domain"
	"github.com/isaacphi/tbprompt/internal/shared"
)

var outFlag string

var TemplateCmd = &cobra.Command{
	Use:   "template",
	Short: "Create, inspect and edit template files",
	Long: `Create, inspect and edit template files. Paths address nodes as
section/component/attribute, e.g. sec_subject/comp_character/char_desc.

Editing commands rewrite FILE in place unless --out is given. Use "-" as FILE
to read from stdin and write to stdout.`,
}

func init() {
	for _, cmd := range []*cobra.Command{setCmd, clearCmd, toggleCmd, weightCmd} {
		cmd.Flags().StringVarP(&outFlag, "out", "o", "", "Write the edited template here instead of FILE")
	}

	TemplateCmd.AddCommand(newCmd, showCmd, setCmd, clearCmd, toggleCmd, weightCmd, exportCmd, validateCmd)
}

func parsePath(arg string, attribute bool) (domain.Path, error) {
	path, err := domain.ParsePath(arg)
	if err != nil {
		return domain.Path{}, err
	}
	if attribute && !path.IsAttribute() {
		return domain.Path{}, fmt.Errorf("path %q must name an attribute (section/component/attribute)", arg)
	}
	return path, nil
}

// editFile loads file, applies edit and writes the result to --out or back to file.
func editFile(file string, edit func(*domain.Template) (*domain.Template, error)) error {
	t, err := shared.LoadTemplate(file)
	if err != nil {
		return err
	}
	next, err := edit(t)
	if err != nil {
		return err
	}

	dest := file
	if outFlag != "" {
		dest = outFlag
	}
	return shared.SaveTemplate(dest, next)
}
