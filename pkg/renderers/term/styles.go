package term

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by the calendar view.
type Styles struct {
	Title    lipgloss.Style
	Cell     lipgloss.Style
	Muted    lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
	Value    lipgloss.Style
	Help     lipgloss.Style
	Frame    lipgloss.Style
}

// DefaultStyles returns the built-in palette.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		Cell:     lipgloss.NewStyle(),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		Today:    lipgloss.NewStyle().Underline(true),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#2563EB")),
		Cursor:   lipgloss.NewStyle().Reverse(true),
		Value:    lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")),
		Help: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7C3AED")).
			Padding(0, 1),
		Frame: lipgloss.NewStyle().Padding(1, 2),
	}
}
