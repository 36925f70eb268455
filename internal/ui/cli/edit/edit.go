package edit

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/isaacphi/tbprompt/internal/appState"
	"github.com/isaacphi/tbprompt/internal/compiler"
	"github.com/isaacphi/tbprompt/internal/document"
	"github.com/isaacphi/tbprompt/internal/domain"
	"github.com/isaacphi/tbprompt/internal/shared"
	"github.com/isaacphi/tbprompt/internal/ui/tui"
)

var EditCmd = &cobra.Command{
	Use:   "edit FILE",
	Short: "Edit a template in the terminal",
	Long: `Open FILE in a full-screen editor with a live preview of the compiled
prompt. A missing FILE starts from an empty template and is created on save.
Press ? in the editor for key bindings.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appState.Get().Config
		file := args[0]
		if file == "-" {
			return fmt.Errorf("edit needs a file, not stdin")
		}

		t, err := loadOrNew(file)
		if err != nil {
			return err
		}

		final, err := tui.StartEditor(cfg, file, t, func(t *domain.Template) error {
			return shared.SaveTemplate(file, t)
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), compiler.Compile(final, cfg.Editor.Platform))
		return nil
	},
}

func loadOrNew(file string) (*domain.Template, error) {
	if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
		name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		return document.New(name), nil
	}
	return shared.LoadTemplate(file)
}
