package formatter

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dmarchetti/tempo/internal/domain"
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

// StatusIndicator returns a colored badge for an execution status.
func StatusIndicator(status domain.ExecutionStatus) string {
	switch status {
	case domain.StatusSuccess, domain.StatusCreated, domain.StatusRescheduled:
		return StyleGreen.Render("● " + string(status))
	case domain.StatusSuggested:
		return StyleYellow.Render("● " + string(status))
	case domain.StatusFailed:
		return StyleRed.Render("● " + string(status))
	default:
		return StyleDim.Render("● " + string(status))
	}
}

// ScoreStyle maps a 0..1 score to a traffic-light style.
func ScoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= 0.7:
		return StyleGreen
	case score >= 0.4:
		return StyleYellow
	default:
		return StyleRed
	}
}

// EnergyStyle colors the calendar energy tiers.
func EnergyStyle(level string) lipgloss.Style {
	switch level {
	case "high":
		return StyleGreen
	case "low":
		return StyleRed
	default:
		return StyleYellow
	}
}
