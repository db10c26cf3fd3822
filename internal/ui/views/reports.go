package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mlowell/sitewise/internal/db"
	"github.com/mlowell/sitewise/internal/model"
	"github.com/mlowell/sitewise/internal/ui/theme"
)

// ReportsPanel shows the derived status report for one project.
// Nothing is cached: every Init recomputes from the store.
type ReportsPanel struct {
	db      *db.DB
	project model.Project
	thm     theme.Theme
	styles  theme.Styles

	report *model.Report
	errMsg string

	width  int
	height int
}

type reportLoadedMsg struct {
	report *model.Report
	err    error
}

// NewReportsPanel creates the reports panel for one project
func NewReportsPanel(database *db.DB, project model.Project) ReportsPanel {
	thm := theme.Default()
	return ReportsPanel{
		db:      database,
		project: project,
		thm:     thm,
		styles:  theme.NewStyles(thm),
	}
}

// Init recomputes the report
func (p ReportsPanel) Init() tea.Cmd {
	return p.load
}

func (p ReportsPanel) load() tea.Msg {
	report, err := p.db.ProjectReport(p.project.ID)
	return reportLoadedMsg{report: report, err: err}
}

// SetSize updates the panel dimensions
func (p ReportsPanel) SetSize(width, height int) ReportsPanel {
	p.width = width
	p.height = height
	return p
}

// InputActive reports whether the panel is capturing text input
func (p ReportsPanel) InputActive() bool {
	return false
}

// Update handles messages
func (p ReportsPanel) Update(msg tea.Msg) (ReportsPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case reportLoadedMsg:
		if msg.err != nil {
			p.errMsg = msg.err.Error()
			return p, nil
		}
		p.errMsg = ""
		p.report = msg.report
		return p, nil

	case tea.KeyMsg:
		if msg.String() == "r" {
			return p, p.load
		}
	}

	return p, nil
}

func completionBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// View renders the report
func (p ReportsPanel) View() string {
	var b strings.Builder

	if p.errMsg != "" {
		b.WriteString(p.styles.Error.Render(p.errMsg))
		b.WriteString("\n")
		return b.String()
	}

	if p.report == nil {
		b.WriteString(p.styles.Subtitle.Render("Computing report..."))
		b.WriteString("\n")
		return b.String()
	}

	r := p.report

	b.WriteString(p.styles.Title.Render("Status Report"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  %s %s\n",
		p.styles.Label.Render(pad("Status:", 22)), r.StatusLabel()))
	b.WriteString(fmt.Sprintf("  %s %s %.1f%%\n",
		p.styles.Label.Render(pad("Completion:", 22)),
		completionBar(r.CompletionPercent, 24), r.CompletionPercent))
	b.WriteString(fmt.Sprintf("  %s %d of %d complete\n",
		p.styles.Label.Render(pad("Tasks:", 22)), r.CompletedTasks, r.TotalTasks))
	b.WriteString(fmt.Sprintf("  %s %s\n",
		p.styles.Label.Render(pad("Hours logged:", 22)), formatQty(r.TotalHours)))
	b.WriteString(fmt.Sprintf("  %s %.2f\n",
		p.styles.Label.Render(pad("Est. material cost:", 22)), r.MaterialCost))

	b.WriteString("\n")
	if len(r.LowStock) > 0 {
		b.WriteString("  ")
		b.WriteString(p.styles.Warning.Render("Low stock: " + strings.Join(r.LowStock, ", ")))
	} else {
		b.WriteString("  ")
		b.WriteString(p.styles.Status.Render("All stock adequate"))
	}
	b.WriteString("\n\n")

	b.WriteString(p.styles.Footer.Render("r: recompute"))

	return b.String()
}
