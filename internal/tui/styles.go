package tui

import "github.com/charmbracelet/lipgloss"

// Colors used in the dashboard.
var (
	ColorPrimary   = lipgloss.Color("#7C3AED") // Purple
	ColorSuccess   = lipgloss.Color("#10B981") // Green
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#9CA3AF") // Light gray
	ColorSecondary = lipgloss.Color("#6B7280") // Gray
)

// Styles holds the styles for the dashboard.
type Styles struct {
	Title        lipgloss.Style
	Counts       lipgloss.Style
	Selected     lipgloss.Style
	Normal       lipgloss.Style
	Done         lipgloss.Style
	Overdue      lipgloss.Style
	StatusBadge  map[string]lipgloss.Style
	Notification map[string]lipgloss.Style
	FilterActive lipgloss.Style
	Help         lipgloss.Style
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	Input        lipgloss.Style
	InputLabel   lipgloss.Style
	ErrorText    lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		Counts: lipgloss.NewStyle().
			Foreground(ColorMuted),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(ColorPrimary).
			Padding(0, 1),
		Normal: lipgloss.NewStyle().
			Padding(0, 1),
		Done: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Strikethrough(true).
			Padding(0, 1),
		Overdue: lipgloss.NewStyle().
			Foreground(ColorError),
		StatusBadge: map[string]lipgloss.Style{
			"pending":     lipgloss.NewStyle().Foreground(ColorWarning),
			"in_progress": lipgloss.NewStyle().Foreground(ColorPrimary),
			"completed":   lipgloss.NewStyle().Foreground(ColorSuccess),
		},
		Notification: map[string]lipgloss.Style{
			"success": lipgloss.NewStyle().Foreground(ColorSuccess),
			"error":   lipgloss.NewStyle().Foreground(ColorError).Bold(true),
			"info":    lipgloss.NewStyle().Foreground(ColorWarning),
		},
		FilterActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		Help: lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2),
		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1),
		Input: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")),
		InputLabel: lipgloss.NewStyle().
			Foreground(ColorSecondary),
		ErrorText: lipgloss.NewStyle().
			Foreground(ColorError),
	}
}
