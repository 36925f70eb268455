// Package document reads, edits, merges and exports prompt templates.
package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/isaacphi/tbprompt/internal/domain"
)

var (
	fenceStart = regexp.MustCompile("^```[a-zA-Z]*")
	fenceEnd   = regexp.MustCompile("```$")
)

// StripFences removes a surrounding markdown code fence such as ```json ... ```.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = fenceStart.ReplaceAllString(s, "")
	s = fenceEnd.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// Parse accepts a user-supplied JSON template. The root must be an object and
// prompt_sections must not be an object. Everything below is read leniently:
// entries that are not objects are skipped, fields of the wrong type read as
// their zero value, and unknown keys are kept.
func Parse(data []byte) (*domain.Template, error) {
	cleaned := []byte(StripFences(string(data)))
	if len(cleaned) == 0 {
		return nil, &domain.ParseError{Reason: "template content is empty"}
	}

	root, err := decodeRoot(cleaned)
	if err != nil {
		return nil, err
	}
	if jsonKind(root["prompt_sections"]) == '{' {
		return nil, &domain.ParseError{Reason: "'prompt_sections' must be an array, not an object"}
	}

	return decodeTemplate(cleaned)
}

// ParseYAML converts a YAML document to JSON and parses it like Parse.
func ParseYAML(data []byte) (*domain.Template, error) {
	converted, err := YAMLToJSON(data)
	if err != nil {
		return nil, err
	}
	return Parse(converted)
}

// YAMLToJSON converts a YAML document to JSON, keeping mapping key order.
func YAMLToJSON(data []byte) ([]byte, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, &domain.ParseError{Reason: "malformed YAML", Err: err}
	}
	if len(node.Content) == 0 {
		return nil, &domain.ParseError{Reason: "template content is empty"}
	}

	var buf bytes.Buffer
	if err := writeYAMLNode(&buf, node.Content[0]); err != nil {
		return nil, &domain.ParseError{Reason: "YAML document cannot be represented as JSON", Err: err}
	}
	return buf.Bytes(), nil
}

func writeYAMLNode(buf *bytes.Buffer, n *yaml.Node) error {
	switch n.Kind {
	case yaml.AliasNode:
		return writeYAMLNode(buf, n.Alias)
	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(n.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			var key string
			if err := n.Content[i].Decode(&key); err != nil {
				return err
			}
			k, _ := json.Marshal(key)
			buf.Write(k)
			buf.WriteByte(':')
			if err := writeYAMLNode(buf, n.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, c := range n.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeYAMLNode(buf, c); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	default:
		var v any
		if err := n.Decode(&v); err != nil {
			return err
		}
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(b)
	}
	return nil
}

// ParseFile picks the decoder from the file name.
func ParseFile(name string, data []byte) (*domain.Template, error) {
	if isYAMLName(name) {
		return ParseYAML(data)
	}
	return Parse(data)
}

// FileJSON returns the JSON form of a template file's content.
func FileJSON(name string, data []byte) ([]byte, error) {
	if isYAMLName(name) {
		return YAMLToJSON(data)
	}
	return []byte(StripFences(string(data))), nil
}

func isYAMLName(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml")
}

// MergeRewrite applies a whole-document replacement produced by the AI rewrite
// collaborator. Missing meta_data and global_settings fall back to prev, and a
// missing or non-array prompt_sections becomes empty. prev is not modified.
func MergeRewrite(prev *domain.Template, data []byte) (*domain.Template, error) {
	cleaned := []byte(StripFences(string(data)))
	if _, err := decodeRoot(cleaned); err != nil {
		return nil, err
	}

	next, err := decodeTemplate(cleaned)
	if err != nil {
		return nil, err
	}

	if prev != nil {
		base := prev.Clone()
		if next.GlobalSettings == nil {
			next.GlobalSettings = base.GlobalSettings
		}
		if next.MetaData == nil {
			next.MetaData = base.MetaData
		}
	}
	return next, nil
}

// Marshal renders t as indented JSON.
func Marshal(t *domain.Template) ([]byte, error) {
	if t == nil {
		return nil, fmt.Errorf("nil template")
	}
	return json.MarshalIndent(t, "", "  ")
}

func decodeRoot(data []byte) (map[string]json.RawMessage, error) {
	if !json.Valid(data) {
		var v any
		err := json.Unmarshal(data, &v)
		return nil, &domain.ParseError{Reason: "malformed JSON", Err: err}
	}
	if jsonKind(data) != '{' {
		return nil, &domain.ParseError{Reason: "document root must be a JSON object"}
	}
	var root map[string]json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, &domain.ParseError{Reason: "malformed JSON", Err: err}
	}
	return root, nil
}

func decodeTemplate(data []byte) (*domain.Template, error) {
	var t domain.Template
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, &domain.ParseError{Reason: "unreadable template", Err: err}
	}
	if err := checkWeights(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

// checkWeights rejects enabled weights that carry no usable number.
func checkWeights(t *domain.Template) error {
	for _, s := range t.Sections {
		if s == nil {
			continue
		}
		for _, c := range s.Components {
			if c == nil {
				continue
			}
			for _, a := range c.Attributes {
				if a == nil || a.Weight == nil || !a.Weight.Enabled {
					continue
				}
				path := domain.Path{Section: s.ID, Component: c.ID, Attribute: a.ID}
				switch v := a.Weight.Value; {
				case v == nil:
					return &domain.ParseError{Reason: fmt.Sprintf("attribute %s has an enabled weight without a numeric value", path)}
				case math.IsNaN(*v) || math.IsInf(*v, 0) || *v < 0:
					return &domain.ParseError{Reason: fmt.Sprintf("attribute %s has an invalid weight %v", path, *v)}
				}
			}
		}
	}
	return nil
}

// jsonKind returns the first significant byte of a JSON value: '{', '[', '"',
// 'n' for null, 't'/'f' for booleans, or a digit/'-' for numbers.
func jsonKind(raw []byte) byte {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0
	}
	return raw[0]
}
