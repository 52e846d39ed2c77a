package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorSuccess   = lipgloss.Color("34")  // Green
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorError     = lipgloss.Color("196") // Red
	ColorMuted     = lipgloss.Color("240") // Dark gray
)

// Styles for the terminal screen.
var (
	BannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	EditPromptStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	EchoStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	OutputStyle = lipgloss.NewStyle()

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
