package help

import (
	"github.com/charmbracelet/bubbles/help"

	"github.com/isaacphi/tbprompt/internal/ui/tui/keymap"
	"github.com/isaacphi/tbprompt/internal/ui/tui/theme"
)

// Model represents the help footer
type Model struct {
	help    help.Model
	keys    keymap.KeyMap
	theme   *theme.Theme
	width   int
	ShowAll bool
}

// New creates a new help model
func New(km keymap.KeyMap, thm *theme.Theme) Model {
	return Model{
		help:  help.New(),
		keys:  km,
		theme: thm,
		width: 80,
	}
}

// SetWidth sets the width of the help component
func (m *Model) SetWidth(width int) {
	m.width = width
	m.help.Width = width
}

// SetMode switches the bindings shown to those of mode
func (m *Model) SetMode(mode keymap.AppMode) {
	m.keys.Mode = mode
}

// View renders the help component
func (m Model) View() string {
	m.help.ShowAll = m.ShowAll
	return m.theme.FooterStyle.Width(m.width).Render(m.help.View(m.keys))
}
