package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorPrompt = lipgloss.Color("34")  // Green
	ColorError  = lipgloss.Color("196") // Red
	ColorMuted  = lipgloss.Color("240") // Dark gray
	ColorText   = lipgloss.Color("252") // Light gray
)

// Styles for the shell UI.
var (
	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorPrompt)

	InputStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	BannerStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginBottom(1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
