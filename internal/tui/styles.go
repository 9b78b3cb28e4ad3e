package tui

import "github.com/charmbracelet/lipgloss"

var (
	treePaneStyle = lipgloss.NewStyle().
			Width(treePaneWidth).
			Padding(1, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(lipgloss.Color("240"))

	contentPaneStyle = lipgloss.NewStyle().Padding(1, 2)

	titleStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	folderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Padding(0, 1)
)
