package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/isaacphi/tbprompt/internal/clipboard"
	"github.com/isaacphi/tbprompt/internal/config"
	"github.com/isaacphi/tbprompt/internal/domain"
	"github.com/isaacphi/tbprompt/internal/ui/tui/keymap"
)

// StartEditor opens t in the full-screen editor. save writes the document
// back to file. It returns the template as it was when the editor closed.
func StartEditor(cfg *config.ConfigSchema, file string, t *domain.Template, save func(*domain.Template) error) (*domain.Template, error) {
	m := New(t, Options{
		Name:     file,
		Platform: cfg.Editor.Platform,
		KeyMap:   keymap.New(&cfg.KeyMap),
		Save:     save,
		Copy:     clipboard.Copy,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("error running editor: %w", err)
	}
	return final.(Model).Template(), nil
}
