package document

import "github.com/isaacphi/tbprompt/internal/domain"

// Node is one row of a flattened template: a section (Depth 0), a component
// (Depth 1) or an attribute (Depth 2). Parent pointers are always set.
type Node struct {
	Path      domain.Path
	Depth     int
	Section   *domain.Section
	Component *domain.Component
	Attribute *domain.Attribute
}

// Label returns the English label of the node, falling back to its id.
func (n Node) Label() string {
	switch n.Depth {
	case 0:
		return labelOf(n.Section.Label, n.Section.ID)
	case 1:
		return labelOf(n.Component.Label, n.Component.ID)
	}
	return labelOf(n.Attribute.Label, n.Attribute.ID)
}

// Active reports whether the node and all of its parents are active.
func (n Node) Active() bool {
	if !n.Section.IsActive() {
		return false
	}
	if n.Depth >= 1 && !n.Component.IsActive() {
		return false
	}
	if n.Depth == 2 && !n.Attribute.IsActive() {
		return false
	}
	return true
}

// Walk flattens t in document order. Nil entries are skipped. The nodes point
// into t.
func Walk(t *domain.Template) []Node {
	if t == nil {
		return nil
	}
	var nodes []Node
	for _, s := range t.Sections {
		if s == nil {
			continue
		}
		nodes = append(nodes, Node{Path: domain.Path{Section: s.ID}, Section: s})
		for _, c := range s.Components {
			if c == nil {
				continue
			}
			nodes = append(nodes, Node{
				Path:      domain.Path{Section: s.ID, Component: c.ID},
				Depth:     1,
				Section:   s,
				Component: c,
			})
			for _, a := range c.Attributes {
				if a == nil {
					continue
				}
				nodes = append(nodes, Node{
					Path:      domain.Path{Section: s.ID, Component: c.ID, Attribute: a.ID},
					Depth:     2,
					Section:   s,
					Component: c,
					Attribute: a,
				})
			}
		}
	}
	return nodes
}
