package document

import (
	"fmt"
	"strings"

	"github.com/isaacphi/tbprompt/internal/compiler"
	"github.com/isaacphi/tbprompt/internal/domain"
)

// Markdown renders an overview of t: one table per section listing every
// attribute with its path, value and reference text, followed by the compiled
// prompt.
func Markdown(t *domain.Template, platform string) string {
	var b strings.Builder

	name := "Untitled template"
	if t != nil && t.MetaData != nil && t.MetaData.Name != "" {
		name = t.MetaData.Name
	}
	fmt.Fprintf(&b, "# %s\n\n", escapeCell(name))
	if t != nil && t.MetaData != nil && t.MetaData.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", t.MetaData.Description)
	}

	if t != nil {
		for _, s := range t.Sections {
			if s == nil {
				continue
			}
			writeSection(&b, s)
		}
	}

	b.WriteString("## Prompt\n\n")
	prompt := compiler.Compile(t, platform)
	if prompt == "" {
		b.WriteString("_empty_\n")
	} else {
		fmt.Fprintf(&b, "```\n%s\n```\n", prompt)
	}
	return b.String()
}

func writeSection(b *strings.Builder, s *domain.Section) {
	title := labelOf(s.Label, s.ID)
	if !s.IsActive() {
		title += " (off)"
	}
	if s.MidjourneyParams {
		title += " [params]"
	}
	fmt.Fprintf(b, "## %s\n\n", escapeCell(title))
	b.WriteString("| Path | On | Value | Reference |\n")
	b.WriteString("|---|---|---|---|\n")

	rows := 0
	for _, c := range s.Components {
		if c == nil {
			continue
		}
		for _, a := range c.Attributes {
			if a == nil {
				continue
			}
			path := domain.Path{Section: s.ID, Component: c.ID, Attribute: a.ID}
			on := "yes"
			if !c.IsActive() || !a.IsActive() {
				on = "no"
			}
			value := a.Value.String()
			if a.Prefix != nil && value != "" {
				value = *a.Prefix + value
			}
			value += a.Weight.Annotation()
			fmt.Fprintf(b, "| `%s` | %s | %s | %s |\n",
				path, on, escapeCell(value), escapeCell(ResolveDisplay(a, a.Value)))
			rows++
		}
	}
	if rows == 0 {
		b.WriteString("| | | _no attributes_ | |\n")
	}
	b.WriteString("\n")
}

func labelOf(label, id string) string {
	if label != "" {
		return label
	}
	return id
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
