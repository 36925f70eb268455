package domain

import "encoding/json"

// LocalizedSuffix marks UI-only translated fields such as label_ko.
const LocalizedSuffix = "_ko"

// Template is a structured prompt document: metadata, settings and an ordered
// list of sections. Templates are treated as immutable values; edits go
// through Clone.
//
// Decoding is lenient below the root: entries that are not objects are
// skipped and fields of the wrong type read as their zero value. Keys the
// model does not know are kept and written back unchanged.
type Template struct {
	MetaData       *MetaData       `json:"meta_data,omitempty"`
	GlobalSettings *GlobalSettings `json:"global_settings,omitempty"`
	Variables      json.RawMessage `json:"variables,omitempty"`
	Sections       []*Section      `json:"prompt_sections"`
	Presets        json.RawMessage `json:"presets,omitempty"`
	PlatformConfig json.RawMessage `json:"platform_configs,omitempty"`
	ColorPalette   json.RawMessage `json:"color_palette,omitempty"`

	raw *rawObject
}

// MetaData is informational only; compilation never reads it.
type MetaData struct {
	Name        string   `json:"template_name"`
	ID          string   `json:"template_id"`
	Version     string   `json:"version"`
	Author      string   `json:"author,omitempty"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`

	raw *rawObject
}

type GlobalSettings struct {
	DefaultPlatform  string `json:"default_platform"`
	PromptSeparator  string `json:"prompt_separator"`
	SectionSeparator string `json:"section_separator"`
	AutoCapitalize   bool   `json:"auto_capitalize"`
	RemoveDuplicates bool   `json:"remove_duplicates"`

	raw *rawObject
}

type Section struct {
	ID               string       `json:"section_id"`
	Label            string       `json:"section_label"`
	LabelKo          string       `json:"section_label_ko,omitempty"`
	Order            float64      `json:"order,omitempty"`
	Active           *bool        `json:"is_active,omitempty"`
	Collapsed        bool         `json:"is_collapsed,omitempty"`
	MidjourneyParams bool         `json:"is_midjourney_params,omitempty"`
	Components       []*Component `json:"components"`

	raw *rawObject
}

type Component struct {
	ID         string       `json:"component_id"`
	Label      string       `json:"component_label"`
	LabelKo    string       `json:"component_label_ko,omitempty"`
	Active     *bool        `json:"is_active,omitempty"`
	Collapsed  bool         `json:"is_collapsed,omitempty"`
	Attributes []*Attribute `json:"attributes"`

	raw *rawObject
}

type Attribute struct {
	ID                string          `json:"attr_id"`
	Label             string          `json:"label"`
	LabelKo           string          `json:"label_ko,omitempty"`
	Type              string          `json:"type"`
	Value             Value           `json:"value"`
	ValueKo           string          `json:"value_ko,omitempty"`
	Options           Options         `json:"options,omitempty"`
	Active            *bool           `json:"is_active,omitempty"`
	Prefix            *string         `json:"prefix,omitempty"`
	Weight            *Weight         `json:"weight,omitempty"`
	PlatformOverrides json.RawMessage `json:"platform_overrides,omitempty"`
	HelpText          string          `json:"help_text,omitempty"`
	Validation        json.RawMessage `json:"validation,omitempty"`

	raw *rawObject
}

// Weight is the "::<value>" emphasis annotation understood by the image service.
type Weight struct {
	Enabled bool     `json:"enabled"`
	Value   *float64 `json:"value,omitempty"`

	raw *rawObject
}

// Annotation returns the suffix appended to a rendered value, or "" when the
// weight is disabled, unset or exactly 1.
func (w *Weight) Annotation() string {
	if w == nil || !w.Enabled || w.Value == nil || *w.Value == 1 {
		return ""
	}
	return "::" + FormatNumber(*w.Value)
}

// IsActive implements the tri-state active flag: absent means active.
func IsActive(flag *bool) bool {
	return flag == nil || *flag
}

func (s *Section) IsActive() bool   { return s != nil && IsActive(s.Active) }
func (c *Component) IsActive() bool { return c != nil && IsActive(c.Active) }
func (a *Attribute) IsActive() bool { return a != nil && IsActive(a.Active) }

// Ptr returns a pointer to v. Handy for the optional fields above.
func Ptr[T any](v T) *T {
	return &v
}
