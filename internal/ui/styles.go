package ui

import "github.com/charmbracelet/lipgloss"

const (
	colorAccent   = "39"
	colorGray     = "245"
	colorDarkGray = "238"
)

// Styles holds the lipgloss styles of the search view.
type Styles struct {
	Prompt   lipgloss.Style
	Active   lipgloss.Style
	Row      lipgloss.Style
	Category lipgloss.Style
	Crumb    lipgloss.Style
	Snippet  lipgloss.Style
	Help     lipgloss.Style
	Panel    lipgloss.Style
}

// DefaultStyles returns the colored styles.
func DefaultStyles() Styles {
	return Styles{
		Prompt:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorAccent)),
		Active:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorAccent)),
		Row:      lipgloss.NewStyle(),
		Category: lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray)).Width(9),
		Crumb:    lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray)),
		Snippet:  lipgloss.NewStyle().Foreground(lipgloss.Color(colorDarkGray)),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color(colorDarkGray)),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorDarkGray)).
			Padding(0, 1),
	}
}

// NoColorStyles returns unstyled components.
func NoColorStyles() Styles {
	return Styles{
		Prompt:   lipgloss.NewStyle(),
		Active:   lipgloss.NewStyle(),
		Row:      lipgloss.NewStyle(),
		Category: lipgloss.NewStyle().Width(9),
		Crumb:    lipgloss.NewStyle(),
		Snippet:  lipgloss.NewStyle(),
		Help:     lipgloss.NewStyle(),
		Panel:    lipgloss.NewStyle(),
	}
}
