// Package tui provides the interactive terminal views for Nudge.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette.
var (
	ColorPrimary = lipgloss.Color("#7C3AED") // Purple
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorBorder  = lipgloss.Color("#4B5563") // Dark gray
)

// Base styles.
var (
	// StyleTitle is used for view titles.
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	// StyleQuestion is used for the prompt question text.
	StyleQuestion = lipgloss.NewStyle().
			Bold(true)

	// StyleYes is used for the affirmative choice.
	StyleYes = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	// StyleNo is used for the negative choice.
	StyleNo = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// StyleHelp is used for key hints at the bottom.
	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	// StylePercent is used for the summary percentage.
	StylePercent = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	// StyleBox frames the prompt and summary views.
	StyleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)
)
