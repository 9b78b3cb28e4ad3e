package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by text-mode output.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
}

func newStyles() Styles {
	return Styles{
		Header1: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75")).MarginTop(1),
		Header2: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81")),
		Bold:    lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
}
