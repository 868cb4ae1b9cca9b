package board

import "github.com/charmbracelet/lipgloss"

// Colors used in the board TUI.
var (
	ColorPrimary = lipgloss.Color("#7C3AED") // Purple
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#9CA3AF") // Light gray
)

// Styles holds the styles for the board TUI.
type Styles struct {
	Title       lipgloss.Style
	Selected    lipgloss.Style
	Normal      lipgloss.Style
	StatusTodo  lipgloss.Style
	StatusDoing lipgloss.Style
	StatusDone  lipgloss.Style
	Loading     lipgloss.Style
	Muted       lipgloss.Style
	Footer      lipgloss.Style
	Help        lipgloss.Style
	Error       lipgloss.Style
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(ColorPrimary).
			Padding(0, 1),
		Normal: lipgloss.NewStyle().
			Padding(0, 1),
		StatusTodo: lipgloss.NewStyle().
			Foreground(ColorMuted),
		StatusDoing: lipgloss.NewStyle().
			Foreground(ColorWarning),
		StatusDone: lipgloss.NewStyle().
			Foreground(ColorSuccess),
		Loading: lipgloss.NewStyle().
			Foreground(ColorWarning).
			Italic(true),
		Muted: lipgloss.NewStyle().
			Foreground(ColorMuted),
		Footer: lipgloss.NewStyle().
			Foreground(ColorSuccess).
			MarginTop(1),
		Help: lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1),
		Error: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2),
		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1),
	}
}

// statusStyle returns the style for a status cell.
func (s Styles) statusStyle(status string) lipgloss.Style {
	switch status {
	case "doing":
		return s.StatusDoing
	case "done":
		return s.StatusDone
	default:
		return s.StatusTodo
	}
}
