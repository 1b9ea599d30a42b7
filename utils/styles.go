package utils

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	CulpritColor = lipgloss.Color("#CC3333") // Dark red
	ClueColor    = lipgloss.Color("#FF8800") // Orange
	GoodColor    = lipgloss.Color("#228B22") // Forest green
	InfoColor    = lipgloss.Color("#4682B4") // Steel blue
	TextColor    = lipgloss.Color("#CCCCCC") // Light gray
	MutedColor   = lipgloss.Color("#888888") // Medium gray
	BorderColor  = lipgloss.Color("#666666") // Dark gray
)

var (
	CulpritStyle = lipgloss.NewStyle().Foreground(CulpritColor).Bold(true)
	ClueStyle    = lipgloss.NewStyle().Foreground(ClueColor)
	GoodStyle    = lipgloss.NewStyle().Foreground(GoodColor).Bold(true)
	InfoStyle    = lipgloss.NewStyle().Foreground(InfoColor)
	MutedStyle   = lipgloss.NewStyle().Foreground(MutedColor)
	SectionStyle = lipgloss.NewStyle().Bold(true)
)

var (
	TabActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(InfoColor).
			Padding(0, 1).
			Bold(true)

	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Padding(0, 1)
)

var (
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(lipgloss.Color("#1a1a1a")).
			Bold(true).
			Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(MutedColor).
			Padding(0, 1)
)

// CreateProgressBar renders a fixed-width bar filled to percentage (0..1).
func CreateProgressBar(percentage float64, width int, color lipgloss.Color) string {
	if width < 4 {
		return fmt.Sprintf("%.0f%%", percentage*100)
	}

	filled := int(math.Round(percentage * float64(width)))
	filled = min(max(filled, 0), width)

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	if color != "" {
		bar = lipgloss.NewStyle().Foreground(color).Render(bar)
	}
	return bar
}

// Rule is a horizontal separator line.
func Rule(width int) string {
	return strings.Repeat("─", width)
}

// TruncateString truncates a string to fit within maxWidth runes
func TruncateString(s string, maxWidth int) string {
	runes := []rune(s)
	if len(runes) <= maxWidth {
		return s
	}
	if maxWidth < 4 {
		return strings.Repeat(".", maxWidth)
	}
	return string(runes[:maxWidth-3]) + "..."
}

// PadRight pads to width measured in terminal cells, so accented room names
// line up.
func PadRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
