package views

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mlowell/sitewise/internal/model"
)

// OpenProjectMsg asks the root model to open a project workspace
type OpenProjectMsg struct {
	Project model.Project
}

// truncate shortens s to fit in width columns
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if width <= 1 {
		return string(runes[:1])
	}
	if len(runes) > width-1 {
		runes = runes[:width-1]
	}
	return string(runes) + "…"
}

// pad right-pads s with spaces to exactly width columns
func pad(s string, width int) string {
	s = truncate(s, width)
	for lipgloss.Width(s) < width {
		s += " "
	}
	return s
}

// formatQty renders a quantity without trailing zero noise
func formatQty(q float64) string {
	if q == float64(int64(q)) {
		return fmt.Sprintf("%d", int64(q))
	}
	return fmt.Sprintf("%.2f", q)
}
