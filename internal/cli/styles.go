package cli

import "github.com/charmbracelet/lipgloss"

// Lipgloss Colors
const (
	colorSuccess = "10"
	colorError   = "9"
	colorMuted   = "245"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorSuccess))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(colorError))
	labelStyle   = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted))
)
