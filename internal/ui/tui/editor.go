package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/isaacphi/tbprompt/internal/compiler"
	"github.com/isaacphi/tbprompt/internal/document"
	"github.com/isaacphi/tbprompt/internal/domain"
	"github.com/isaacphi/tbprompt/internal/ui/tui/components/help"
	"github.com/isaacphi/tbprompt/internal/ui/tui/components/input"
	"github.com/isaacphi/tbprompt/internal/ui/tui/keymap"
	"github.com/isaacphi/tbprompt/internal/ui/tui/layout"
	"github.com/isaacphi/tbprompt/internal/ui/tui/theme"
)

// Options wires the editor to its surroundings.
type Options struct {
	Name     string
	Platform string
	KeyMap   keymap.KeyMap
	Save     func(*domain.Template) error
	Copy     func(string) error
}

type savedMsg struct{ err error }

type copiedMsg struct{ err error }

// Model is the template editor. Every edit replaces the whole template, and
// the compiled prompt is rebuilt from it on each change.
type Model struct {
	opts     Options
	template *domain.Template
	nodes    []document.Node
	cursor   int
	prompt   string

	mode   keymap.AppMode
	keys   keymap.KeyMap
	input  input.Model
	help   help.Model
	theme  *theme.Theme
	width  int
	height int

	dirty      bool
	confirming bool
	status     string
	err        error
}

// New creates an editor for t.
func New(t *domain.Template, opts Options) Model {
	thm := theme.DefaultTheme()
	m := Model{
		opts:   opts,
		keys:   opts.KeyMap,
		input:  input.New(thm),
		help:   help.New(opts.KeyMap, thm),
		theme:  thm,
		width:  80,
		height: 24,
	}
	m.replace(t)
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Template returns the document as currently edited.
func (m Model) Template() *domain.Template {
	return m.template
}

func (m Model) Prompt() string {
	return m.prompt
}

func (m Model) Dirty() bool {
	return m.dirty
}

// replace swaps in a new document and keeps the cursor on the same row.
func (m *Model) replace(t *domain.Template) {
	m.template = t
	m.nodes = document.Walk(t)
	m.prompt = compiler.Compile(t, m.opts.Platform)
	if m.cursor >= len(m.nodes) {
		m.cursor = len(m.nodes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) apply(next *domain.Template, err error) {
	if err != nil {
		m.err = err
		return
	}
	m.replace(next)
	m.dirty = true
	m.err = nil
}

func (m Model) selected() (document.Node, bool) {
	if m.cursor < 0 || m.cursor >= len(m.nodes) {
		return document.Node{}, false
	}
	return m.nodes[m.cursor], true
}

func (m Model) setMode(mode keymap.AppMode) Model {
	m.mode = mode
	m.keys.Mode = mode
	m.help.SetMode(mode)
	return m
}

// Update handles all the editor updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(msg.Width - 4)
		m.help.SetWidth(msg.Width - 4)
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.dirty = false
		m.status = "Saved " + m.opts.Name
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.status = "Copied prompt to clipboard"
		return m, nil

	case input.InputSubmitMsg:
		m = m.setMode(keymap.NormalMode)
		if node, ok := m.selected(); ok && node.Attribute != nil {
			v, err := document.ValueFromInput(node.Attribute, msg.Value)
			if err != nil {
				m.err = err
				return m, nil
			}
			m.apply(document.SetValue(m.template, node.Path, v))
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.mode == keymap.InputMode {
			return m.updateInput(msg)
		}
		return m.updateNormal(msg)
	}

	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Cancel) {
		m.input.Blur()
		m = m.setMode(keymap.NormalMode)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	quitting := key.Matches(msg, m.keys.Quit)
	if !quitting {
		m.confirming = false
	}
	m.status = ""
	m.err = nil

	switch {
	case quitting:
		if m.dirty && !m.confirming {
			m.confirming = true
			m.status = "Unsaved changes. Press quit again to discard them."
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.ToggleHelp):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.nodes)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		if node, ok := m.selected(); ok {
			m.apply(document.Toggle(m.template, node.Path))
		}

	case key.Matches(msg, m.keys.Clear):
		if node, ok := m.selected(); ok && node.Attribute != nil {
			m.apply(document.ClearValue(m.template, node.Path))
		}

	case key.Matches(msg, m.keys.Edit):
		node, ok := m.selected()
		if !ok || node.Attribute == nil {
			return m, nil
		}
		m = m.setMode(keymap.InputMode)
		cmd := m.input.Start(node.Label(), node.Attribute.Value.String())
		return m, cmd

	case key.Matches(msg, m.keys.Save):
		if m.opts.Save == nil {
			m.err = fmt.Errorf("saving is not available")
			return m, nil
		}
		save, t := m.opts.Save, m.template
		return m, func() tea.Msg {
			return savedMsg{err: save(t)}
		}

	case key.Matches(msg, m.keys.Copy):
		if m.opts.Copy == nil {
			m.err = fmt.Errorf("clipboard is not available")
			return m, nil
		}
		copyFn, prompt := m.opts.Copy, m.prompt
		return m, func() tea.Msg {
			return copiedMsg{err: copyFn(prompt)}
		}
	}

	return m, nil
}

// View renders the editor
func (m Model) View() string {
	title := m.title()
	footer := m.footer()
	preview := m.preview()

	height := layout.ContentHeight(m.height-2, title, preview, footer)
	rows := m.rows(height)

	return m.theme.DocStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		rows,
		preview,
		footer,
	))
}

func (m Model) title() string {
	name := "Untitled template"
	if m.template != nil && m.template.MetaData != nil && m.template.MetaData.Name != "" {
		name = m.template.MetaData.Name
	}
	if m.dirty {
		name += " *"
	}
	return m.theme.TitleStyle.Render(name) + "\n"
}

func (m Model) rows(height int) string {
	if len(m.nodes) == 0 {
		return m.theme.ReferenceStyle.Render("No sections") + "\n"
	}

	start, end := layout.Window(len(m.nodes), m.cursor, height)
	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(m.row(m.nodes[i], i == m.cursor))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) row(n document.Node, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}
	indent := strings.Repeat("  ", n.Depth)

	var text string
	style := m.theme.RowStyle
	switch n.Depth {
	case 0:
		style = m.theme.SectionStyle
		text = n.Label()
		if n.Section.MidjourneyParams {
			text += " [params]"
		}
	case 1:
		text = n.Label()
	default:
		text = n.Label() + ": " + n.Attribute.Value.String() + n.Attribute.Weight.Annotation()
		if ref := document.ResolveDisplay(n.Attribute, n.Attribute.Value); ref != "" && ref != n.Attribute.Value.String() {
			text += " " + m.theme.ReferenceStyle.Render("("+ref+")")
		}
	}

	if !n.Active() {
		style = m.theme.InactiveStyle
	}
	if selected {
		style = m.theme.SelectedStyle
	}
	return cursor + indent + style.Render(text)
}

func (m Model) preview() string {
	prompt := m.prompt
	if prompt == "" {
		prompt = m.theme.ReferenceStyle.Render("empty prompt")
	}
	width := m.width - 8
	if width < 20 {
		width = 20
	}
	return m.theme.PromptStyle.Width(width).Render(prompt)
}

func (m Model) footer() string {
	var parts []string
	if m.mode == keymap.InputMode {
		parts = append(parts, m.input.View())
	}
	switch {
	case m.err != nil:
		parts = append(parts, m.theme.ErrorStyle.Render("Error: "+m.err.Error()))
	case m.status != "":
		parts = append(parts, m.theme.StatusStyle.Render(m.status))
	}
	parts = append(parts, m.help.View())
	return strings.Join(parts, "\n")
}
