package ui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary = lipgloss.Color("#00BFFF") // Cyan — headings
	colorAccent  = lipgloss.Color("#FFD700") // Gold — score and highlights
	colorSuccess = lipgloss.Color("#00E676") // Green — increases
	colorDanger  = lipgloss.Color("#FF5252") // Red — decreases and errors
	colorMuted   = lipgloss.Color("#636363") // Gray — de-emphasized
	colorWhite   = lipgloss.Color("#EEEEEE") // Off-white — primary text
)

var (
	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleSection = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true).
			MarginTop(1)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleScore = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	styleIncrease = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleDecrease = lipgloss.NewStyle().
			Foreground(colorDanger)

	styleNotice = lipgloss.NewStyle().
			Foreground(colorAccent)

	styleError = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)
)
