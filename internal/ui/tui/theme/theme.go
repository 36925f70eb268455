package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the semantic colors and styles for the editor
type Theme struct {
	// Colors
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Text      lipgloss.AdaptiveColor
	Subtle    lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor
	Success   lipgloss.AdaptiveColor

	// Styles
	DocStyle       lipgloss.Style
	TitleStyle     lipgloss.Style
	SectionStyle   lipgloss.Style
	RowStyle       lipgloss.Style
	SelectedStyle  lipgloss.Style
	InactiveStyle  lipgloss.Style
	ReferenceStyle lipgloss.Style
	InputStyle     lipgloss.Style
	PromptStyle    lipgloss.Style
	FooterStyle    lipgloss.Style
	ErrorStyle     lipgloss.Style
	StatusStyle    lipgloss.Style
}

// DefaultTheme creates a default theme
func DefaultTheme() *Theme {
	primary := lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	secondary := lipgloss.AdaptiveColor{Light: "#4B56FD", Dark: "#4B56FD"}
	text := lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#FFFFFF"}
	subtle := lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	errColor := lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF4136"}
	success := lipgloss.AdaptiveColor{Light: "#00A000", Dark: "#2ECC40"}

	return &Theme{
		Primary:   primary,
		Secondary: secondary,
		Text:      text,
		Subtle:    subtle,
		Error:     errColor,
		Success:   success,

		DocStyle: lipgloss.NewStyle().Padding(1, 2),

		TitleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(primary).
			Padding(0, 1),

		SectionStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		RowStyle: lipgloss.NewStyle().
			Foreground(text),

		SelectedStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(secondary),

		InactiveStyle: lipgloss.NewStyle().
			Foreground(subtle).
			Strikethrough(true),

		ReferenceStyle: lipgloss.NewStyle().
			Foreground(subtle).
			Italic(true),

		InputStyle: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(primary).
			Padding(0, 1),

		PromptStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 1),

		FooterStyle: lipgloss.NewStyle().
			Foreground(subtle),

		ErrorStyle: lipgloss.NewStyle().
			Foreground(errColor),

		StatusStyle: lipgloss.NewStyle().
			Foreground(success),
	}
}
