// Package ui holds the terminal styling for blackstar's report output.
package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// Color palette: hospital-monitor tones on a dark terminal.
var (
	Primary = lipgloss.Color("#38BDF8") // Sky
	Success = lipgloss.Color("#22C55E") // Green
	Warning = lipgloss.Color("#F59E0B") // Amber
	Error   = lipgloss.Color("#F43F5E") // Rose
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	Border  = lipgloss.Color("#334155") // Slate
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Label = lipgloss.NewStyle().
		Foreground(TextDim)

	Value = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true)

	Unlocked = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	Locked = lipgloss.NewStyle().
		Foreground(TextDim)
)

// Bar renders a horizontal progress bar with a trailing percentage.
func Bar(percent float64, width int) string {
	if width < 4 {
		width = 4
	}

	filled := int(float64(width) * percent)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := lipgloss.NewStyle().Background(Primary).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(Border).Render(strings.Repeat(" ", width-filled))
	return bar + lipgloss.NewStyle().Foreground(TextDim).Render(fmt.Sprintf(" %3d%%", int(percent*100)))
}
