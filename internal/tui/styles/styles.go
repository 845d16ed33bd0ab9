// Package styles holds the lipgloss styles shared across the console views.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/api"
)

var (
	// Colors
	PrimaryColor   = lipgloss.Color("#A78BFA") // Purple
	SecondaryColor = lipgloss.Color("#10B981") // Green
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	ErrorColor     = lipgloss.Color("#F87171") // Red
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	SurfaceColor   = lipgloss.Color("#1F2937") // Dark surface
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#6B7280") // Gray

	// Convenience styles for colors
	Primary   = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning   = lipgloss.NewStyle().Foreground(WarningColor)
	Muted     = lipgloss.NewStyle().Foreground(MutedColor)
	Text      = lipgloss.NewStyle().Foreground(TextColor)

	// Task lifecycle status colors
	StatusPending    = lipgloss.Color("#9CA3AF") // Gray
	StatusProcessing = lipgloss.Color("#60A5FA") // Blue
	StatusCompleted  = lipgloss.Color("#10B981") // Green
	StatusFailed     = lipgloss.Color("#F87171") // Red

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// Navigation tab styles
	TabActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(PrimaryColor).
			Padding(0, 2)

	TabInactive = lipgloss.NewStyle().
			Foreground(MutedColor).
			Padding(0, 2)

	// Content area
	ContentBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2)

	// Help bar
	HelpBar = lipgloss.NewStyle().
			Foreground(MutedColor).
			MarginTop(1)

	HelpKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(SecondaryColor)

	// Header
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(BorderColor).
		MarginBottom(1).
		PaddingBottom(1)

	// Selected list row
	RowSelected = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(SurfaceColor)

	// Status badge
	badge = lipgloss.NewStyle().
		Padding(0, 1).
		Bold(true).
		Foreground(TextColor)

	// Error message
	ErrorMsg = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// Success message
	SuccessMsg = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	// Preformatted result content
	ResultBlock = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	// Loading spinner
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)
)

// StatusColor returns the color for a normalized task status. Labels outside
// the four lifecycle values fall back to the muted color.
func StatusColor(status string) lipgloss.Color {
	switch api.NormalizeStatus(status) {
	case api.StatusPending:
		return StatusPending
	case api.StatusProcessing:
		return StatusProcessing
	case api.StatusCompleted:
		return StatusCompleted
	case api.StatusFailed:
		return StatusFailed
	default:
		return MutedColor
	}
}

// StatusBadge renders a status label as a colored badge. The label is
// normalized first, so an absent status renders as pending.
func StatusBadge(status string) string {
	normalized := api.NormalizeStatus(status)
	return badge.Background(StatusColor(normalized)).Render(normalized)
}

// StatusIcon returns an icon for a normalized task status.
func StatusIcon(status string) string {
	switch api.NormalizeStatus(status) {
	case api.StatusPending:
		return "○"
	case api.StatusProcessing:
		return "●"
	case api.StatusCompleted:
		return "✓"
	case api.StatusFailed:
		return "✗"
	default:
		return "●"
	}
}
