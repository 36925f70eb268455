// Package prompt holds the instructions sent to the language model.
package prompt

import (
	"bytes"
	"embed"
	"fmt"
	"sort"
	"strings"
	"text/template"
)

// Built-in template names.
const (
	Rewrite   = "rewrite"
	Translate = "translate"
)

//go:embed templates/*.tmpl
var builtin embed.FS

type Template struct {
	Name        string
	Description string
	Template    string
	Variables   []string
}

type Manager struct {
	templates map[string]*Template
}

var descriptions = map[string]struct {
	text      string
	variables []string
}{
	Rewrite:   {"Optimize a prompt template and add Korean UI translations", []string{"Template", "Instruction"}},
	Translate: {"Translate a single string between Korean and English", []string{"Text"}},
}

// NewManager returns a manager loaded with the built-in templates.
func NewManager() (*Manager, error) {
	m := &Manager{
		templates: make(map[string]*Template),
	}

	for name, d := range descriptions {
		data, err := builtin.ReadFile("templates/" + name + ".tmpl")
		if err != nil {
			return nil, fmt.Errorf("prompt: loading %s: %w", name, err)
		}
		m.Register(&Template{
			Name:        name,
			Description: d.text,
			Template:    string(data),
			Variables:   d.variables,
		})
	}
	return m, nil
}

// Register adds or replaces a template.
func (m *Manager) Register(t *Template) {
	m.templates[t.Name] = t
}

func (m *Manager) LoadTemplate(name string) (*Template, error) {
	if template, ok := m.templates[name]; ok {
		return template, nil
	}
	return nil, fmt.Errorf("prompt: unknown template %q (have %s)", name, strings.Join(m.Names(), ", "))
}

// Names lists the registered templates, sorted.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.templates))
	for name := range m.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RenderTemplate fills the template with variables. Every declared variable
// must be present.
func (m *Manager) RenderTemplate(t *Template, variables map[string]string) (string, error) {
	for _, v := range t.Variables {
		if _, ok := variables[v]; !ok {
			return "", fmt.Errorf("prompt: %s: missing variable %q", t.Name, v)
		}
	}

	tmpl, err := template.New(t.Name).Option("missingkey=error").Parse(t.Template)
	if err != nil {
		return "", fmt.Errorf("prompt: parsing template %s: %w", t.Name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, variables); err != nil {
		return "", fmt.Errorf("prompt: executing template %s: %w", t.Name, err)
	}
	return buf.String(), nil
}

// Render loads and renders the named template.
func (m *Manager) Render(name string, variables map[string]string) (string, error) {
	t, err := m.LoadTemplate(name)
	if err != nil {
		return "", err
	}
	return m.RenderTemplate(t, variables)
}
