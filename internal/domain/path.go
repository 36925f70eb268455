package domain

import (
	"fmt"
	"strings"
)

// Path addresses a node in a template. Empty trailing parts address the
// enclosing node, so {Section: "sec_style"} is the section itself.
type Path struct {
	Section   string
	Component string
	Attribute string
}

// ParsePath reads the "section/component/attribute" form used on the command line.
func ParsePath(s string) (Path, error) {
	s = strings.Trim(strings.TrimSpace(s), "/")
	if s == "" {
		return Path{}, fmt.Errorf("empty path")
	}
	parts := strings.Split(s, "/")
	if len(parts) > 3 {
		return Path{}, fmt.Errorf("path %q has more than three parts", s)
	}
	for _, p := range parts {
		if p == "" {
			return Path{}, fmt.Errorf("path %q has an empty part", s)
		}
	}
	var p Path
	p.Section = parts[0]
	if len(parts) > 1 {
		p.Component = parts[1]
	}
	if len(parts) > 2 {
		p.Attribute = parts[2]
	}
	return p, nil
}

func (p Path) String() string {
	parts := []string{p.Section}
	if p.Component != "" {
		parts = append(parts, p.Component)
	}
	if p.Attribute != "" {
		parts = append(parts, p.Attribute)
	}
	return strings.Join(parts, "/")
}

// IsAttribute reports whether the path names a single attribute.
func (p Path) IsAttribute() bool {
	return p.Section != "" && p.Component != "" && p.Attribute != ""
}
