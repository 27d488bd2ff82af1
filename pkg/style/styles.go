package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	// Headers and titles
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	// Verdict styles used by the check/merge commands
	AcceptStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ExcludeStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// Text styles
	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// Coordinate and rule renderings
	CoordinateStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	RuleStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)
)
