package domain

import "encoding/json"

// Clone returns a deep copy of the template. Nil entries in the section,
// component and attribute lists are preserved. The decoded form of each object
// is shared; it is never modified after decoding.
func (t *Template) Clone() *Template {
	if t == nil {
		return nil
	}
	out := *t
	out.Variables = cloneRaw(t.Variables)
	out.Presets = cloneRaw(t.Presets)
	out.PlatformConfig = cloneRaw(t.PlatformConfig)
	out.ColorPalette = cloneRaw(t.ColorPalette)
	if t.MetaData != nil {
		md := *t.MetaData
		md.Tags = append([]string(nil), t.MetaData.Tags...)
		out.MetaData = &md
	}
	if t.GlobalSettings != nil {
		gs := *t.GlobalSettings
		out.GlobalSettings = &gs
	}
	if t.Sections != nil {
		out.Sections = make([]*Section, len(t.Sections))
		for i, s := range t.Sections {
			out.Sections[i] = s.Clone()
		}
	}
	return &out
}

func (s *Section) Clone() *Section {
	if s == nil {
		return nil
	}
	out := *s
	out.Active = clonePtr(s.Active)
	if s.Components != nil {
		out.Components = make([]*Component, len(s.Components))
		for i, c := range s.Components {
			out.Components[i] = c.Clone()
		}
	}
	return &out
}

func (c *Component) Clone() *Component {
	if c == nil {
		return nil
	}
	out := *c
	out.Active = clonePtr(c.Active)
	if c.Attributes != nil {
		out.Attributes = make([]*Attribute, len(c.Attributes))
		for i, a := range c.Attributes {
			out.Attributes[i] = a.Clone()
		}
	}
	return &out
}

func (a *Attribute) Clone() *Attribute {
	if a == nil {
		return nil
	}
	out := *a
	out.Value = a.Value.clone()
	out.Active = clonePtr(a.Active)
	out.Prefix = clonePtr(a.Prefix)
	if a.Weight != nil {
		w := *a.Weight
		w.Value = clonePtr(a.Weight.Value)
		out.Weight = &w
	}
	if a.Options != nil {
		out.Options = append(Options(nil), a.Options...)
	}
	out.PlatformOverrides = cloneRaw(a.PlatformOverrides)
	out.Validation = cloneRaw(a.Validation)
	return &out
}

func (v Value) clone() Value {
	if v.list != nil {
		v.list = append([]string(nil), v.list...)
	}
	return v
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneRaw(r json.RawMessage) json.RawMessage {
	if r == nil {
		return nil
	}
	return append(json.RawMessage(nil), r...)
}
