package views

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mlowell/sitewise/internal/db"
	"github.com/mlowell/sitewise/internal/model"
	"github.com/mlowell/sitewise/internal/ui/theme"
)

type logsMode int

const (
	logsBrowsing logsMode = iota
	logsAdding
	logsConfirmingDelete
)

// LogsPanel manages a project's daily work log
type LogsPanel struct {
	db      *db.DB
	project model.Project
	thm     theme.Theme
	styles  theme.Styles

	entries []model.LogEntry
	cursor  int
	mode    logsMode

	// Add form: date, hours, description
	inputs []textinput.Model
	focus  int

	status string
	errMsg string

	width  int
	height int
}

type logsLoadedMsg struct {
	entries []model.LogEntry
	err     error
}

type logMutatedMsg struct {
	status string
	err    error
}

// NewLogsPanel creates the daily log panel for one project
func NewLogsPanel(database *db.DB, project model.Project) LogsPanel {
	thm := theme.Default()

	inputs := make([]textinput.Model, 3)
	for i := range inputs {
		inputs[i] = textinput.New()
	}
	inputs[0].Placeholder = "Date (YYYY-MM-DD)"
	inputs[0].CharLimit = 10
	inputs[0].SetValue(time.Now().Format("2006-01-02"))
	inputs[1].Placeholder = "Hours worked"
	inputs[1].CharLimit = 10
	inputs[2].Placeholder = "Work performed"
	inputs[2].CharLimit = 200

	return LogsPanel{
		db:      database,
		project: project,
		thm:     thm,
		styles:  theme.NewStyles(thm),
		inputs:  inputs,
	}
}

// Init loads the log entries
func (p LogsPanel) Init() tea.Cmd {
	return p.load
}

func (p LogsPanel) load() tea.Msg {
	entries, err := p.db.GetLogEntriesByProject(p.project.ID)
	return logsLoadedMsg{entries: entries, err: err}
}

// SetSize updates the panel dimensions
func (p LogsPanel) SetSize(width, height int) LogsPanel {
	p.width = width
	p.height = height
	return p
}

// InputActive reports whether the panel is capturing text input
func (p LogsPanel) InputActive() bool {
	return p.mode != logsBrowsing
}

// Update handles messages
func (p LogsPanel) Update(msg tea.Msg) (LogsPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case logsLoadedMsg:
		if msg.err != nil {
			p.errMsg = msg.err.Error()
			return p, nil
		}
		p.entries = msg.entries
		if p.cursor >= len(p.entries) {
			p.cursor = max(0, len(p.entries)-1)
		}
		return p, nil

	case logMutatedMsg:
		if msg.err != nil {
			p.errMsg = msg.err.Error()
			return p, nil
		}
		p.status = msg.status
		return p, p.load

	case tea.KeyMsg:
		switch p.mode {
		case logsAdding:
			return p.updateAdding(msg)
		case logsConfirmingDelete:
			return p.updateConfirmingDelete(msg)
		default:
			return p.updateBrowsing(msg)
		}
	}

	return p, nil
}

func (p LogsPanel) updateBrowsing(msg tea.KeyMsg) (LogsPanel, tea.Cmd) {
	p.status = ""
	p.errMsg = ""

	switch msg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.entries)-1 {
			p.cursor++
		}
	case "a":
		p.mode = logsAdding
		p.focus = 0
		p.inputs[0].SetValue(time.Now().Format("2006-01-02"))
		p.inputs[1].SetValue("")
		p.inputs[2].SetValue("")
		for i := range p.inputs {
			p.inputs[i].Blur()
		}
		return p, p.inputs[0].Focus()
	case "d":
		if len(p.entries) > 0 {
			p.mode = logsConfirmingDelete
		}
	case "r":
		return p, p.load
	}

	return p, nil
}

func (p LogsPanel) updateAdding(msg tea.KeyMsg) (LogsPanel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		p.mode = logsBrowsing
		return p, nil
	case "tab", "shift+tab", "up", "down":
		if msg.String() == "shift+tab" || msg.String() == "up" {
			p.focus = (p.focus + len(p.inputs) - 1) % len(p.inputs)
		} else {
			p.focus = (p.focus + 1) % len(p.inputs)
		}
		var cmd tea.Cmd
		for i := range p.inputs {
			if i == p.focus {
				cmd = p.inputs[i].Focus()
			} else {
				p.inputs[i].Blur()
			}
		}
		return p, cmd
	case "enter":
		hoursText := strings.TrimSpace(p.inputs[1].Value())
		hours := 0.0
		if hoursText != "" {
			var err error
			if hours, err = strconv.ParseFloat(hoursText, 64); err != nil {
				p.errMsg = "hours must be a number"
				return p, nil
			}
		}
		in := model.CreateLogEntryInput{
			ProjectID:   p.project.ID,
			LogDate:     strings.TrimSpace(p.inputs[0].Value()),
			Hours:       hours,
			Description: strings.TrimSpace(p.inputs[2].Value()),
		}
		p.mode = logsBrowsing
		return p, func() tea.Msg {
			e, err := p.db.CreateLogEntry(in)
			if err != nil {
				return logMutatedMsg{err: err}
			}
			return logMutatedMsg{status: fmt.Sprintf("logged %s hours on %s", formatQty(e.Hours), e.LogDate)}
		}
	}

	var cmd tea.Cmd
	p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
	return p, cmd
}

func (p LogsPanel) updateConfirmingDelete(msg tea.KeyMsg) (LogsPanel, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		p.mode = logsBrowsing
		entry := p.entries[p.cursor]
		return p, func() tea.Msg {
			if err := p.db.DeleteLogEntry(entry.ID); err != nil {
				return logMutatedMsg{err: err}
			}
			return logMutatedMsg{status: fmt.Sprintf("deleted log entry for %s", entry.LogDate)}
		}
	case "n", "N", "esc":
		p.mode = logsBrowsing
	}
	return p, nil
}

// View renders the daily log panel
func (p LogsPanel) View() string {
	var b strings.Builder

	if p.mode == logsAdding {
		b.WriteString(p.styles.Subtitle.Render("New log entry"))
		b.WriteString("\n")
		labels := []string{"Date", "Hours", "Work"}
		for i, input := range p.inputs {
			b.WriteString(fmt.Sprintf("  %s %s\n", p.styles.Label.Render(pad(labels[i]+":", 7)), input.View()))
		}
		b.WriteString(p.styles.Footer.Render("enter: add • tab: next field • esc: cancel"))
		b.WriteString("\n\n")
	}

	if len(p.entries) == 0 {
		b.WriteString(p.styles.Subtitle.Render("No log entries yet. Press a to record a day's work."))
		b.WriteString("\n")
	} else {
		header := fmt.Sprintf("  %s %s %s",
			pad("Date", 12), pad("Hours", 7), pad("Description", 44))
		b.WriteString(p.styles.Label.Render(header))
		b.WriteString("\n")

		var total float64
		for i, e := range p.entries {
			total += e.Hours
			row := fmt.Sprintf("%s %s %s",
				pad(e.LogDate, 12),
				pad(formatQty(e.Hours), 7),
				pad(e.Description, 44))

			if i == p.cursor {
				b.WriteString(p.styles.RowSelected.Render("▸ " + row))
			} else {
				b.WriteString(p.styles.RowNormal.Render("  " + row))
			}
			b.WriteString("\n")
		}

		b.WriteString(p.styles.Label.Render(fmt.Sprintf("  %s %s",
			pad("Total", 12), formatQty(total))))
		b.WriteString("\n")
	}

	if p.mode == logsConfirmingDelete && len(p.entries) > 0 {
		b.WriteString("\n")
		b.WriteString(p.styles.Warning.Render(
			fmt.Sprintf("Delete log entry for %s? (y/n)", p.entries[p.cursor].LogDate)))
		b.WriteString("\n")
	}

	if p.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(p.styles.Error.Render(p.errMsg))
		b.WriteString("\n")
	} else if p.status != "" {
		b.WriteString("\n")
		b.WriteString(p.styles.Status.Render(p.status))
		b.WriteString("\n")
	}

	if p.mode == logsBrowsing {
		b.WriteString("\n")
		b.WriteString(p.styles.Footer.Render("a: add • d: delete • r: refresh"))
	}

	return b.String()
}
