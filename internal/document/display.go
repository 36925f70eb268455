package document

import "github.com/isaacphi/tbprompt/internal/domain"

// ResolveDisplay returns the reference text shown next to an attribute's
// editable value. A localized value always wins; otherwise the current value
// is matched against the attribute's options and the option's label is used.
// Without a match the stringified value is returned.
func ResolveDisplay(attr *domain.Attribute, current domain.Value) string {
	if attr != nil && attr.ValueKo != "" {
		return attr.ValueKo
	}

	text := current.String()
	if attr == nil || len(attr.Options) == 0 {
		return text
	}

	opt, ok := attr.Options.Find(text)
	if !ok {
		return text
	}
	return opt.DisplayLabel()
}
