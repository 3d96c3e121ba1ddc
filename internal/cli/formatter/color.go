package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/evanmoss/outlay/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PerformanceColor returns the style matching a performance status.
func PerformanceColor(status domain.PerformanceStatus) lipgloss.Style {
	switch status {
	case domain.PerformanceCritical:
		return StyleRed
	case domain.PerformanceAtRisk:
		return StyleYellow
	case domain.PerformanceOnTrack:
		return StyleGreen
	default:
		return StyleDim
	}
}

// PerformanceIndicator returns a colored indicator string such as "● CRITICAL".
func PerformanceIndicator(status domain.PerformanceStatus) string {
	switch status {
	case domain.PerformanceCritical:
		return StyleRed.Render("● CRITICAL")
	case domain.PerformanceAtRisk:
		return StyleYellow.Render("● AT RISK")
	case domain.PerformanceOnTrack:
		return StyleGreen.Render("● ON TRACK")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// IndexStyled renders a CPI or SPI value with health coloring: green at or
// above 1, yellow down to 0.8, red below.
func IndexStyled(index float64) string {
	text := fmt.Sprintf("%.2f", index)
	switch {
	case index >= 1:
		return StyleGreen.Render(text)
	case index >= 0.8:
		return StyleYellow.Render(text)
	default:
		return StyleRed.Render(text)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
