package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/isaacphi/tbprompt/internal/config"
)

// AppMode represents the editor's current input mode
type AppMode int

const (
	NormalMode AppMode = iota
	InputMode
)

// KeyMap holds the editor bindings built from the configured keyMap.
type KeyMap struct {
	Mode AppMode

	Quit       key.Binding
	ToggleHelp key.Binding
	Up         key.Binding
	Down       key.Binding
	Toggle     key.Binding
	Edit       key.Binding
	Clear      key.Binding
	Save       key.Binding
	Copy       key.Binding
	Cancel     key.Binding
}

var descriptions = map[string]string{
	config.KeyActionQuit:       "quit",
	config.KeyActionToggleHelp: "toggle help",
	config.KeyActionUp:         "move up",
	config.KeyActionDown:       "move down",
	config.KeyActionToggle:     "on/off",
	config.KeyActionEdit:       "edit value",
	config.KeyActionClear:      "clear value",
	config.KeyActionSave:       "save",
	config.KeyActionCopy:       "copy prompt",
	config.KeyActionCancel:     "cancel edit",
}

// New creates bindings for every action in km. Actions without keys are
// disabled.
func New(km *config.KeyMap) KeyMap {
	return KeyMap{
		Quit:       binding(km, config.KeyActionQuit),
		ToggleHelp: binding(km, config.KeyActionToggleHelp),
		Up:         binding(km, config.KeyActionUp),
		Down:       binding(km, config.KeyActionDown),
		Toggle:     binding(km, config.KeyActionToggle),
		Edit:       binding(km, config.KeyActionEdit),
		Clear:      binding(km, config.KeyActionClear),
		Save:       binding(km, config.KeyActionSave),
		Copy:       binding(km, config.KeyActionCopy),
		Cancel:     binding(km, config.KeyActionCancel),
	}
}

func binding(km *config.KeyMap, action string) key.Binding {
	keys := km.GetKeys(action)
	if len(keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKeys(keys), descriptions[action]),
	)
}

func helpKeys(keys []string) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		switch k {
		case " ":
			names[i] = "space"
		case "up":
			names[i] = "↑"
		case "down":
			names[i] = "↓"
		default:
			names[i] = k
		}
	}
	return strings.Join(names, "/")
}

// ShortHelp returns keybindings for the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	if k.Mode == InputMode {
		return []key.Binding{k.confirm(), k.Cancel}
	}
	return []key.Binding{k.Edit, k.Toggle, k.Save, k.Quit, k.ToggleHelp}
}

// FullHelp returns keybindings organized by their groups
func (k KeyMap) FullHelp() [][]key.Binding {
	if k.Mode == InputMode {
		return [][]key.Binding{{k.confirm(), k.Cancel}}
	}
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Edit, k.Toggle, k.Clear},
		{k.Save, k.Copy, k.Quit, k.ToggleHelp},
	}
}

// confirm is the enter key while typing; letter bindings of Edit are text there.
func (k KeyMap) confirm() key.Binding {
	return key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply"))
}
