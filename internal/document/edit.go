package document

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/isaacphi/tbprompt/internal/domain"
)

const maxSuggestions = 3

// Edits never touch their input. Each one clones the template, changes the
// copy and returns it, so a caller can swap documents in a single assignment.

// SetValue replaces the value of the attribute at path.
func SetValue(t *domain.Template, path domain.Path, v domain.Value) (*domain.Template, error) {
	return editAttribute(t, path, func(a *domain.Attribute) {
		a.Value = v
		// A stale translation would keep showing the old value.
		a.ValueKo = ""
	})
}

// ClearValue empties the attribute at path.
func ClearValue(t *domain.Template, path domain.Path) (*domain.Template, error) {
	return SetValue(t, path, domain.Text(""))
}

// SetWeight enables the weight annotation with the given value, or disables it
// when value is nil.
func SetWeight(t *domain.Template, path domain.Path, value *float64) (*domain.Template, error) {
	return editAttribute(t, path, func(a *domain.Attribute) {
		if value == nil {
			if a.Weight != nil {
				a.Weight.Enabled = false
			}
			return
		}
		v := *value
		if a.Weight == nil {
			a.Weight = &domain.Weight{}
		}
		a.Weight.Enabled = true
		a.Weight.Value = &v
	})
}

// SetActive sets the active flag of the section, component or attribute at path.
func SetActive(t *domain.Template, path domain.Path, active bool) (*domain.Template, error) {
	next := t.Clone()
	if next == nil {
		return nil, &domain.NotFoundError{Kind: "section", ID: path.Section}
	}

	section, err := findSection(next, path.Section)
	if err != nil {
		return nil, err
	}
	if path.Component == "" {
		section.Active = domain.Ptr(active)
		return next, nil
	}

	comp, err := findComponent(section, path.Component)
	if err != nil {
		return nil, err
	}
	if path.Attribute == "" {
		comp.Active = domain.Ptr(active)
		return next, nil
	}

	attr, err := findAttribute(comp, path.Attribute)
	if err != nil {
		return nil, err
	}
	attr.Active = domain.Ptr(active)
	return next, nil
}

// ValueFromInput converts text typed by a user into a value shaped like the
// attribute's current one. Lists are split on commas; numbers, booleans and
// objects must parse. Blank input always clears the value.
func ValueFromInput(attr *domain.Attribute, input string) (domain.Value, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return domain.Text(""), nil
	}

	kind := domain.KindText
	if attr != nil {
		kind = attr.Value.Kind()
		if kind == domain.KindNull && attr.Type == "number" {
			kind = domain.KindNumber
		}
	}

	switch kind {
	case domain.KindList:
		var items []string
		for _, item := range strings.Split(input, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		return domain.List(items...), nil
	case domain.KindNumber:
		n, err := strconv.ParseFloat(input, 64)
		if err != nil {
			return domain.Value{}, fmt.Errorf("%q is not a number", input)
		}
		return domain.Number(n), nil
	case domain.KindBool:
		b, err := strconv.ParseBool(input)
		if err != nil {
			return domain.Value{}, fmt.Errorf("%q is not true or false", input)
		}
		return domain.Bool(b), nil
	case domain.KindObject:
		var v domain.Value
		if err := json.Unmarshal([]byte(input), &v); err != nil || v.Kind() != domain.KindObject {
			return domain.Value{}, fmt.Errorf("%q is not a JSON object", input)
		}
		return v, nil
	}
	return domain.Text(input), nil
}

// Toggle flips the active flag of the node at path.
func Toggle(t *domain.Template, path domain.Path) (*domain.Template, error) {
	active, err := IsActive(t, path)
	if err != nil {
		return nil, err
	}
	return SetActive(t, path, !active)
}

// IsActive reports the effective active flag of the node at path.
func IsActive(t *domain.Template, path domain.Path) (bool, error) {
	if t == nil {
		return false, &domain.NotFoundError{Kind: "section", ID: path.Section}
	}
	section, err := findSection(t, path.Section)
	if err != nil {
		return false, err
	}
	if path.Component == "" {
		return section.IsActive(), nil
	}
	comp, err := findComponent(section, path.Component)
	if err != nil {
		return false, err
	}
	if path.Attribute == "" {
		return comp.IsActive(), nil
	}
	attr, err := findAttribute(comp, path.Attribute)
	if err != nil {
		return false, err
	}
	return attr.IsActive(), nil
}

// Lookup returns the attribute at path. The result points into t and must be
// treated as read-only.
func Lookup(t *domain.Template, path domain.Path) (*domain.Attribute, error) {
	if t == nil {
		return nil, &domain.NotFoundError{Kind: "section", ID: path.Section}
	}
	section, err := findSection(t, path.Section)
	if err != nil {
		return nil, err
	}
	comp, err := findComponent(section, path.Component)
	if err != nil {
		return nil, err
	}
	return findAttribute(comp, path.Attribute)
}

func editAttribute(t *domain.Template, path domain.Path, fn func(*domain.Attribute)) (*domain.Template, error) {
	next := t.Clone()
	if next == nil {
		return nil, &domain.NotFoundError{Kind: "section", ID: path.Section}
	}
	attr, err := Lookup(next, path)
	if err != nil {
		return nil, err
	}
	fn(attr)
	return next, nil
}

func findSection(t *domain.Template, id string) (*domain.Section, error) {
	var ids []string
	for _, s := range t.Sections {
		if s == nil {
			continue
		}
		if s.ID == id {
			return s, nil
		}
		ids = append(ids, s.ID)
	}
	return nil, notFound("section", id, ids)
}

func findComponent(s *domain.Section, id string) (*domain.Component, error) {
	var ids []string
	for _, c := range s.Components {
		if c == nil {
			continue
		}
		if c.ID == id {
			return c, nil
		}
		ids = append(ids, c.ID)
	}
	return nil, notFound("component", id, ids)
}

func findAttribute(c *domain.Component, id string) (*domain.Attribute, error) {
	var ids []string
	for _, a := range c.Attributes {
		if a == nil {
			continue
		}
		if a.ID == id {
			return a, nil
		}
		ids = append(ids, a.ID)
	}
	return nil, notFound("attribute", id, ids)
}

func notFound(kind, id string, candidates []string) error {
	return &domain.NotFoundError{Kind: kind, ID: id, Suggestions: Suggest(id, candidates)}
}

// Suggest returns up to three candidates that fuzzy-match id, best first.
func Suggest(id string, candidates []string) []string {
	if id == "" || len(candidates) == 0 {
		return nil
	}
	matches := fuzzy.Find(id, candidates)
	var out []string
	for _, m := range matches {
		out = append(out, m.Str)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
