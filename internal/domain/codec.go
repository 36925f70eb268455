package domain

import "encoding/json"

func (t Template) fields() []field {
	return []field{
		{key: "meta_data", value: t.MetaData, omit: t.MetaData == nil},
		{key: "global_settings", value: t.GlobalSettings, omit: t.GlobalSettings == nil},
		{key: "variables", value: t.Variables, omit: len(t.Variables) == 0},
		{key: "prompt_sections", value: nonNil(t.Sections)},
		{key: "presets", value: t.Presets, omit: len(t.Presets) == 0},
		{key: "platform_configs", value: t.PlatformConfig, omit: len(t.PlatformConfig) == 0},
		{key: "color_palette", value: t.ColorPalette, omit: len(t.ColorPalette) == 0},
	}
}

func (t Template) MarshalJSON() ([]byte, error) {
	return encodeObject(t.raw, t.fields())
}

// UnmarshalJSON reads a template. A prompt_sections value that is not an array
// reads as no sections and is written back as [].
func (t *Template) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil {
		return err
	}
	md, err := objectOrNil[MetaData](obj.values["meta_data"])
	if err != nil {
		return err
	}
	gs, err := objectOrNil[GlobalSettings](obj.values["global_settings"])
	if err != nil {
		return err
	}
	if k := jsonKind(obj.values["prompt_sections"]); k != 0 && k != '[' {
		obj.values["prompt_sections"] = json.RawMessage("[]")
	}
	sections, err := decodeEntries[Section](obj.values["prompt_sections"])
	if err != nil {
		return err
	}

	*t = Template{
		MetaData:       md,
		GlobalSettings: gs,
		Variables:      obj.raw("variables"),
		Sections:       nonNil(sections),
		Presets:        obj.raw("presets"),
		PlatformConfig: obj.raw("platform_configs"),
		ColorPalette:   obj.raw("color_palette"),
		raw:            obj,
	}
	return obj.snapshot(t.fields())
}

func (m MetaData) fields() []field {
	return []field{
		{key: "template_name", value: m.Name},
		{key: "template_id", value: m.ID},
		{key: "version", value: m.Version},
		{key: "author", value: m.Author, omit: m.Author == ""},
		{key: "description", value: m.Description, omit: m.Description == ""},
		{key: "category", value: m.Category, omit: m.Category == ""},
		{key: "tags", value: m.Tags, omit: len(m.Tags) == 0},
	}
}

func (m MetaData) MarshalJSON() ([]byte, error) {
	return encodeObject(m.raw, m.fields())
}

func (m *MetaData) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil {
		return err
	}
	*m = MetaData{
		Name:        obj.text("template_name"),
		ID:          obj.text("template_id"),
		Version:     obj.text("version"),
		Author:      obj.text("author"),
		Description: obj.text("description"),
		Category:    obj.text("category"),
		Tags:        obj.stringList("tags"),
		raw:         obj,
	}
	return obj.snapshot(m.fields())
}

func (g GlobalSettings) fields() []field {
	return []field{
		{key: "default_platform", value: g.DefaultPlatform},
		{key: "prompt_separator", value: g.PromptSeparator},
		{key: "section_separator", value: g.SectionSeparator},
		{key: "auto_capitalize", value: g.AutoCapitalize},
		{key: "remove_duplicates", value: g.RemoveDuplicates},
	}
}

func (g GlobalSettings) MarshalJSON() ([]byte, error) {
	return encodeObject(g.raw, g.fields())
}

func (g *GlobalSettings) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil {
		return err
	}
	*g = GlobalSettings{
		DefaultPlatform:  obj.text("default_platform"),
		PromptSeparator:  obj.text("prompt_separator"),
		SectionSeparator: obj.text("section_separator"),
		AutoCapitalize:   obj.boolean("auto_capitalize"),
		RemoveDuplicates: obj.boolean("remove_duplicates"),
		raw:              obj,
	}
	return obj.snapshot(g.fields())
}

func (s Section) fields() []field {
	return []field{
		{key: "section_id", value: s.ID},
		{key: "section_label", value: s.Label},
		{key: "section_label_ko", value: s.LabelKo, omit: s.LabelKo == ""},
		{key: "order", value: s.Order, omit: s.Order == 0},
		{key: "is_active", value: s.Active, omit: s.Active == nil},
		{key: "is_collapsed", value: s.Collapsed, omit: !s.Collapsed},
		{key: "is_midjourney_params", value: s.MidjourneyParams, omit: !s.MidjourneyParams},
		{key: "components", value: nonNil(s.Components)},
	}
}

func (s Section) MarshalJSON() ([]byte, error) {
	return encodeObject(s.raw, s.fields())
}

// UnmarshalJSON reads a section. A numeric string order counts as a number.
func (s *Section) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil {
		return err
	}
	components, err := decodeEntries[Component](obj.values["components"])
	if err != nil {
		return err
	}
	order, _ := obj.number("order")

	*s = Section{
		ID:               obj.text("section_id"),
		Label:            obj.text("section_label"),
		LabelKo:          obj.text("section_label_ko"),
		Order:            order,
		Active:           obj.flag("is_active"),
		Collapsed:        obj.boolean("is_collapsed"),
		MidjourneyParams: obj.boolean("is_midjourney_params"),
		Components:       components,
		raw:              obj,
	}
	return obj.snapshot(s.fields())
}

func (c Component) fields() []field {
	return []field{
		{key: "component_id", value: c.ID},
		{key: "component_label", value: c.Label},
		{key: "component_label_ko", value: c.LabelKo, omit: c.LabelKo == ""},
		{key: "is_active", value: c.Active, omit: c.Active == nil},
		{key: "is_collapsed", value: c.Collapsed, omit: !c.Collapsed},
		{key: "attributes", value: nonNil(c.Attributes)},
	}
}

func (c Component) MarshalJSON() ([]byte, error) {
	return encodeObject(c.raw, c.fields())
}

func (c *Component) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil {
		return err
	}
	attributes, err := decodeEntries[Attribute](obj.values["attributes"])
	if err != nil {
		return err
	}

	*c = Component{
		ID:         obj.text("component_id"),
		Label:      obj.text("component_label"),
		LabelKo:    obj.text("component_label_ko"),
		Active:     obj.flag("is_active"),
		Collapsed:  obj.boolean("is_collapsed"),
		Attributes: attributes,
		raw:        obj,
	}
	return obj.snapshot(c.fields())
}

func (a Attribute) fields() []field {
	return []field{
		{key: "attr_id", value: a.ID},
		{key: "label", value: a.Label},
		{key: "label_ko", value: a.LabelKo, omit: a.LabelKo == ""},
		{key: "type", value: a.Type},
		{key: "value", value: a.Value},
		{key: "value_ko", value: a.ValueKo, omit: a.ValueKo == ""},
		{key: "options", value: a.Options, omit: len(a.Options) == 0},
		{key: "is_active", value: a.Active, omit: a.Active == nil},
		{key: "prefix", value: a.Prefix, omit: a.Prefix == nil},
		{key: "weight", value: a.Weight, omit: a.Weight == nil},
		{key: "platform_overrides", value: a.PlatformOverrides, omit: len(a.PlatformOverrides) == 0},
		{key: "help_text", value: a.HelpText, omit: a.HelpText == ""},
		{key: "validation", value: a.Validation, omit: len(a.Validation) == 0},
	}
}

func (a Attribute) MarshalJSON() ([]byte, error) {
	return encodeObject(a.raw, a.fields())
}

// UnmarshalJSON reads an attribute. A value that cannot be read is null.
func (a *Attribute) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil {
		return err
	}

	var value Value
	if raw, ok := obj.values["value"]; ok {
		if err := value.UnmarshalJSON(raw); err != nil {
			value = Null()
		}
	}
	var options Options
	if raw, ok := obj.values["options"]; ok {
		if err := options.UnmarshalJSON(raw); err != nil {
			return err
		}
	}
	weight, err := objectOrNil[Weight](obj.values["weight"])
	if err != nil {
		return err
	}

	*a = Attribute{
		ID:                obj.text("attr_id"),
		Label:             obj.text("label"),
		LabelKo:           obj.text("label_ko"),
		Type:              obj.text("type"),
		Value:             value,
		ValueKo:           obj.text("value_ko"),
		Options:           options,
		Active:            obj.flag("is_active"),
		Prefix:            obj.textPtr("prefix"),
		Weight:            weight,
		PlatformOverrides: obj.raw("platform_overrides"),
		HelpText:          obj.text("help_text"),
		Validation:        obj.raw("validation"),
		raw:               obj,
	}
	return obj.snapshot(a.fields())
}

func (w Weight) fields() []field {
	return []field{
		{key: "enabled", value: w.Enabled},
		{key: "value", value: w.Value, omit: w.Value == nil},
	}
}

func (w Weight) MarshalJSON() ([]byte, error) {
	return encodeObject(w.raw, w.fields())
}

// UnmarshalJSON reads a weight. A numeric string value counts as a number;
// any other non-number leaves Value unset.
func (w *Weight) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil {
		return err
	}
	*w = Weight{Enabled: obj.boolean("enabled"), raw: obj}
	if n, ok := obj.number("value"); ok {
		w.Value = &n
	}
	return obj.snapshot(w.fields())
}

var (
	_ json.Marshaler   = Template{}
	_ json.Unmarshaler = (*Template)(nil)
	_ json.Unmarshaler = (*Attribute)(nil)
)
