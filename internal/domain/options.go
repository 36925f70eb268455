package domain

import (
	"bytes"
	"encoding/json"
)

// Option is one candidate value for an attribute. On the wire it is either a
// bare string or an object with value/label/label_ko.
type Option struct {
	Value   string `json:"value"`
	Label   string `json:"label,omitempty"`
	LabelKo string `json:"label_ko,omitempty"`

	// plain is set when the option was a bare string.
	plain bool
}

// PlainOption builds the bare-string form of an option.
func PlainOption(v string) Option {
	return Option{Value: v, plain: true}
}

// IsPlain reports whether the option was given as a bare string.
func (o Option) IsPlain() bool { return o.plain }

// DisplayLabel prefers the localized label, then the label, then the value.
func (o Option) DisplayLabel() string {
	if o.plain {
		return o.Value
	}
	switch {
	case o.LabelKo != "":
		return o.LabelKo
	case o.Label != "":
		return o.Label
	}
	return o.Value
}

func (o Option) MarshalJSON() ([]byte, error) {
	if o.plain {
		return json.Marshal(o.Value)
	}
	type option Option
	return json.Marshal(option(o))
}

func (o *Option) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*o = PlainOption(s)
		return nil
	}
	type option Option
	var decoded option
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*o = Option(decoded)
	return nil
}

// Options is the candidate list of an attribute. Decoding is lenient: a
// non-array value yields no options and entries that are neither strings nor
// objects are dropped.
type Options []Option

func (opts *Options) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*opts = nil
		return nil
	}

	out := make(Options, 0, len(raw))
	for _, r := range raw {
		if bytes.Equal(bytes.TrimSpace(r), []byte("null")) {
			continue
		}
		var opt Option
		if err := opt.UnmarshalJSON(r); err != nil {
			continue
		}
		out = append(out, opt)
	}
	*opts = out
	return nil
}

// Find returns the first option whose value equals v.
func (opts Options) Find(v string) (Option, bool) {
	for _, opt := range opts {
		if opt.Value == v {
			return opt, true
		}
	}
	return Option{}, false
}
