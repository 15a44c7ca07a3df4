package tui

import "github.com/charmbracelet/lipgloss"

// Colors follow the notice severities: green for success, red for errors.
const (
	colorError   = lipgloss.Color("9")
	colorSuccess = lipgloss.Color("10")
)

var (
	// screen frame around the login form and the sessions table
	appStyle   = lipgloss.NewStyle().Padding(1, 2)
	titleStyle = lipgloss.NewStyle().Bold(true)
	// hotkey line and pagination footer
	helpStyle = lipgloss.NewStyle().Faint(true)

	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)

	// close confirmation and build info
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	noticeBoxStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
)
