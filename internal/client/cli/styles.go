package cli

import "github.com/charmbracelet/lipgloss"

// Styles contains lipgloss styles for the views.
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Muted   lipgloss.Style
	Box     lipgloss.Style
	Figure  lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")),
		Success: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46")),
		Warning: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("226")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1),
		Figure: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")),
	}
}
