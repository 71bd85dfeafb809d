package theme

import (
	"github.com/charmbracelet/lipgloss"

	"deskflow/internal/domain"
)

// Color palette for the dashboard
var (
	// Primary colors
	Teal       = lipgloss.Color("#14B8A6")
	BrightTeal = lipgloss.Color("#2DD4BF")

	// Neutrals
	White     = lipgloss.Color("#FFFFFF")
	LightGray = lipgloss.Color("#9CA3AF")
	DimGray   = lipgloss.Color("#6B7280")
	DarkGray  = lipgloss.Color("#374151")

	// Semantic colors
	Success = lipgloss.Color("#22C55E")
	Warning = lipgloss.Color("#F59E0B")
	Error   = lipgloss.Color("#EF4444")
	Info    = lipgloss.Color("#3B82F6")
)

// RatingColor maps a productivity rating to its display color.
func RatingColor(rating domain.Rating) lipgloss.Color {
	switch rating {
	case domain.RatingExcellent:
		return Success
	case domain.RatingGood:
		return Info
	case domain.RatingAverage:
		return Warning
	default:
		return Error
	}
}
