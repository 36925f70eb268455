package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/isaacphi/tbprompt/internal/ui/tui/theme"
)

// InputSubmitMsg is emitted when the input is submitted
type InputSubmitMsg struct {
	Value string
}

// Model is the single-line editor used for attribute values
type Model struct {
	textInput textinput.Model
	theme     *theme.Theme
	width     int
}

// New creates a new input model
func New(thm *theme.Theme) Model {
	ti := textinput.New()
	ti.Placeholder = "empty"
	ti.CharLimit = 2000
	ti.Width = 80

	return Model{
		textInput: ti,
		theme:     thm,
		width:     80,
	}
}

// SetWidth sets the width of the input
func (m *Model) SetWidth(width int) {
	m.width = width
	m.textInput.Width = width - 4 // Account for padding and borders
}

// Start focuses the input with prompt and initial value, cursor at the end
func (m *Model) Start(prompt, value string) tea.Cmd {
	m.textInput.Prompt = prompt + ": "
	m.textInput.SetValue(value)
	m.textInput.CursorEnd()
	return m.textInput.Focus()
}

// Blur blurs the input
func (m *Model) Blur() {
	m.textInput.Blur()
}

func (m Model) Focused() bool {
	return m.textInput.Focused()
}

// Value returns the current input value
func (m Model) Value() string {
	return m.textInput.Value()
}

// Update handles input updates. Enter submits the value, even when empty.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEnter {
		value := m.textInput.Value()
		m.textInput.Blur()
		return m, func() tea.Msg {
			return InputSubmitMsg{Value: value}
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// View renders the input
func (m Model) View() string {
	return m.theme.InputStyle.Width(m.width).Render(m.textInput.View())
}
