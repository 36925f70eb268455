package config

import "encoding/json"

// Key bindings for the template editor
const (
	KeyActionQuit       = "quit"
	KeyActionToggleHelp = "toggleHelp"
	KeyActionUp         = "up"
	KeyActionDown       = "down"
	KeyActionToggle     = "toggle"
	KeyActionEdit       = "edit"
	KeyActionClear      = "clear"
	KeyActionSave       = "save"
	KeyActionCopy       = "copy"
	KeyActionCancel     = "cancel"
)

type KeyMap struct {
	Quit       []string `mapstructure:"quit" json:"quit" jsonschema:"description=Exit the editor,default=q"`
	ToggleHelp []string `mapstructure:"toggleHelp" json:"toggleHelp" jsonschema:"description=Toggle help display,default=?"`
	Up         []string `mapstructure:"up" json:"up" jsonschema:"description=Move to the previous row,default=k"`
	Down       []string `mapstructure:"down" json:"down" jsonschema:"description=Move to the next row,default=j"`
	Toggle     []string `mapstructure:"toggle" json:"toggle" jsonschema:"description=Switch the selected row on or off,default=t"`
	Edit       []string `mapstructure:"edit" json:"edit" jsonschema:"description=Edit the selected value or confirm an edit,default=enter"`
	Clear      []string `mapstructure:"clear" json:"clear" jsonschema:"description=Clear the selected value,default=x"`
	Save       []string `mapstructure:"save" json:"save" jsonschema:"description=Write the template back to its file,default=ctrl+s"`
	Copy       []string `mapstructure:"copy" json:"copy" jsonschema:"description=Copy the compiled prompt,default=y"`
	Cancel     []string `mapstructure:"cancel" json:"cancel" jsonschema:"description=Leave input mode without saving,default=esc"`

	keyCache map[string][]string
}

// GetKeys returns the key bindings for an action
func (k *KeyMap) GetKeys(action string) []string {
	if k.keyCache == nil {
		k.keyCache = make(map[string][]string)
		jsonBytes, err := json.Marshal(k)
		if err != nil {
			return nil
		}
		if err := json.Unmarshal(jsonBytes, &k.keyCache); err != nil {
			return nil
		}
	}

	return k.keyCache[action]
}

// Action returns the action bound to key, or "" when the key is unbound.
func (k *KeyMap) Action(key string) string {
	for _, action := range []string{
		KeyActionQuit, KeyActionToggleHelp, KeyActionUp, KeyActionDown, KeyActionToggle,
		KeyActionEdit, KeyActionClear, KeyActionSave, KeyActionCopy, KeyActionCancel,
	} {
		for _, bound := range k.GetKeys(action) {
			if bound == key {
				return action
			}
		}
	}
	return ""
}
