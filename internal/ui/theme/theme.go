package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme for the UI
type Theme struct {
	Name string

	Foreground lipgloss.Color
	Subtle     lipgloss.Color
	Highlight  lipgloss.Color
	Border     lipgloss.Color

	Primary lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	StatusNotStarted lipgloss.Color
	StatusInProgress lipgloss.Color
	StatusOnHold     lipgloss.Color
	StatusComplete   lipgloss.Color
}

// Default returns the standard theme
func Default() Theme {
	return Theme{
		Name: "default",

		Foreground: lipgloss.Color("252"),
		Subtle:     lipgloss.Color("241"),
		Highlight:  lipgloss.Color("212"),
		Border:     lipgloss.Color("238"),

		Primary: lipgloss.Color("39"),
		Success: lipgloss.Color("42"),
		Warning: lipgloss.Color("214"),
		Error:   lipgloss.Color("196"),

		StatusNotStarted: lipgloss.Color("241"),
		StatusInProgress: lipgloss.Color("39"),
		StatusOnHold:     lipgloss.Color("214"),
		StatusComplete:   lipgloss.Color("42"),
	}
}

// Styles holds pre-computed lipgloss styles based on theme
type Styles struct {
	Header   lipgloss.Style
	Tab      lipgloss.Style
	TabFocus lipgloss.Style
	Footer   lipgloss.Style

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style

	RowNormal   lipgloss.Style
	RowSelected lipgloss.Style
	RowDone     lipgloss.Style
	RowWarning  lipgloss.Style

	Status  lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	Panel lipgloss.Style
}

// NewStyles creates styles from a theme
func NewStyles(t Theme) Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			Padding(0, 1),

		Tab: lipgloss.NewStyle().
			Foreground(t.Subtle).
			Padding(0, 1),

		TabFocus: lipgloss.NewStyle().
			Foreground(t.Highlight).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(t.Subtle).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(t.Subtle).
			Italic(true),

		Label: lipgloss.NewStyle().
			Foreground(t.Subtle),

		RowNormal: lipgloss.NewStyle().
			Foreground(t.Foreground),

		RowSelected: lipgloss.NewStyle().
			Foreground(t.Highlight).
			Bold(true),

		RowDone: lipgloss.NewStyle().
			Foreground(t.Subtle).
			Strikethrough(true),

		RowWarning: lipgloss.NewStyle().
			Foreground(t.Warning),

		Status: lipgloss.NewStyle().
			Foreground(t.Success),

		Warning: lipgloss.NewStyle().
			Foreground(t.Warning).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(t.Error).
			Bold(true),

		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
	}
}

// StatusColor returns the color for a task status string
func (t Theme) StatusColor(status string) lipgloss.Color {
	switch status {
	case "In Progress":
		return t.StatusInProgress
	case "On Hold":
		return t.StatusOnHold
	case "Complete":
		return t.StatusComplete
	default:
		return t.StatusNotStarted
	}
}
