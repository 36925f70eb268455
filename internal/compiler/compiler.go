// Package compiler turns a prompt template into the single line of text that
// is submitted to the image generation service.
package compiler

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/isaacphi/tbprompt/internal/domain"
)

const (
	DefaultPromptSeparator  = ", "
	DefaultSectionSeparator = ", "

	listSeparator  = ", "
	dedupSeparator = ", "
	paramSeparator = " "
	// Parameter values are concatenated without a space between list items.
	paramListSeparator = ","
)

// Compile renders t for the given platform. It never fails: missing or partial
// structure is skipped, and a nil template compiles to "".
//
// Sections are visited in ascending Order (stable on ties), then components and
// attributes in document order. Parameter sections are rendered as trailing
// "prefix+value" tokens and never take part in joining or deduplication.
func Compile(t *domain.Template, platform string) string {
	if t == nil {
		return ""
	}

	promptSep, sectionSep, dedup := settings(t.GlobalSettings)

	var parts, params []string
	for _, section := range activeSections(t.Sections) {
		if section.MidjourneyParams {
			params = append(params, paramTokens(section)...)
			continue
		}

		tokens := bodyTokens(section)
		if len(tokens) > 0 {
			parts = append(parts, strings.Join(tokens, promptSep))
		}
	}

	prompt := strings.Join(parts, sectionSep)
	if dedup {
		prompt = RemoveDuplicates(prompt)
	}
	if len(params) > 0 {
		prompt += paramSeparator + strings.Join(params, paramSeparator)
	}

	slog.Debug("compiled prompt",
		"platform", platform,
		"sections", len(parts),
		"params", len(params),
		"length", len(prompt))

	return prompt
}

func settings(gs *domain.GlobalSettings) (promptSep, sectionSep string, dedup bool) {
	promptSep, sectionSep = DefaultPromptSeparator, DefaultSectionSeparator
	if gs == nil {
		return promptSep, sectionSep, false
	}
	if gs.PromptSeparator != "" {
		promptSep = gs.PromptSeparator
	}
	if gs.SectionSeparator != "" {
		sectionSep = gs.SectionSeparator
	}
	return promptSep, sectionSep, gs.RemoveDuplicates
}

// activeSections drops nil and inactive sections and sorts the rest by Order.
func activeSections(sections []*domain.Section) []*domain.Section {
	out := make([]*domain.Section, 0, len(sections))
	for _, s := range sections {
		if s.IsActive() {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}

// eachAttribute calls fn for every attribute of the section that survives the
// active and empty-value filters.
func eachAttribute(section *domain.Section, fn func(*domain.Attribute)) {
	for _, comp := range section.Components {
		if !comp.IsActive() {
			continue
		}
		for _, attr := range comp.Attributes {
			if !attr.IsActive() || attr.Value.IsEmpty() {
				continue
			}
			fn(attr)
		}
	}
}

func bodyTokens(section *domain.Section) []string {
	var tokens []string
	eachAttribute(section, func(attr *domain.Attribute) {
		tokens = append(tokens, attr.Value.Join(listSeparator)+attr.Weight.Annotation())
	})
	return tokens
}

func paramTokens(section *domain.Section) []string {
	var tokens []string
	eachAttribute(section, func(attr *domain.Attribute) {
		prefix := ""
		if attr.Prefix != nil {
			prefix = *attr.Prefix
		}
		tokens = append(tokens, prefix+attr.Value.Join(paramListSeparator))
	})
	return tokens
}

// RemoveDuplicates splits s on commas, trims each piece, drops empty pieces and
// keeps the first occurrence of each, rejoining with ", ". Matching is exact:
// case and inner whitespace are significant.
func RemoveDuplicates(s string) string {
	seen := make(map[string]bool)
	var kept []string
	for _, piece := range strings.Split(s, ",") {
		piece = strings.TrimSpace(piece)
		if piece == "" || seen[piece] {
			continue
		}
		seen[piece] = true
		kept = append(kept, piece)
	}
	return strings.Join(kept, dedupSeparator)
}
