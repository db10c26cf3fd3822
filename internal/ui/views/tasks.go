package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mlowell/sitewise/internal/db"
	"github.com/mlowell/sitewise/internal/model"
	"github.com/mlowell/sitewise/internal/ui/theme"
)

type tasksMode int

const (
	tasksBrowsing tasksMode = iota
	tasksAdding
	tasksConfirmingDelete
)

// TasksPanel manages a project's tasks and their prerequisites
type TasksPanel struct {
	db      *db.DB
	project model.Project
	thm     theme.Theme
	styles  theme.Styles

	tasks  []model.Task
	cursor int
	mode   tasksMode

	// Add form: name, prerequisite task id
	inputs []textinput.Model
	focus  int

	status string
	errMsg string

	width  int
	height int
}

type tasksLoadedMsg struct {
	tasks []model.Task
	err   error
}

type taskMutatedMsg struct {
	status string
	err    error
}

// NewTasksPanel creates the task panel for one project
func NewTasksPanel(database *db.DB, project model.Project) TasksPanel {
	thm := theme.Default()

	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
	}
	inputs[0].Placeholder = "Task name"
	inputs[0].CharLimit = 100
	inputs[1].Placeholder = "Prerequisite task ID (optional)"
	inputs[1].CharLimit = 10

	return TasksPanel{
		db:      database,
		project: project,
		thm:     thm,
		styles:  theme.NewStyles(thm),
		inputs:  inputs,
	}
}

// Init loads the task list
func (p TasksPanel) Init() tea.Cmd {
	return p.load
}

func (p TasksPanel) load() tea.Msg {
	tasks, err := p.db.GetTasksByProject(p.project.ID)
	return tasksLoadedMsg{tasks: tasks, err: err}
}

// SetSize updates the panel dimensions
func (p TasksPanel) SetSize(width, height int) TasksPanel {
	p.width = width
	p.height = height
	return p
}

// InputActive reports whether the panel is capturing text input
func (p TasksPanel) InputActive() bool {
	return p.mode != tasksBrowsing
}

// Update handles messages
func (p TasksPanel) Update(msg tea.Msg) (TasksPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case tasksLoadedMsg:
		if msg.err != nil {
			p.errMsg = msg.err.Error()
			return p, nil
		}
		p.tasks = msg.tasks
		if p.cursor >= len(p.tasks) {
			p.cursor = max(0, len(p.tasks)-1)
		}
		return p, nil

	case taskMutatedMsg:
		if msg.err != nil {
			p.errMsg = msg.err.Error()
			return p, nil
		}
		p.status = msg.status
		return p, p.load

	case tea.KeyMsg:
		switch p.mode {
		case tasksAdding:
			return p.updateAdding(msg)
		case tasksConfirmingDelete:
			return p.updateConfirmingDelete(msg)
		default:
			return p.updateBrowsing(msg)
		}
	}

	return p, nil
}

func (p TasksPanel) updateBrowsing(msg tea.KeyMsg) (TasksPanel, tea.Cmd) {
	p.status = ""
	p.errMsg = ""

	switch msg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.tasks)-1 {
			p.cursor++
		}
	case "a":
		p.mode = tasksAdding
		p.focus = 0
		for i := range p.inputs {
			p.inputs[i].SetValue("")
			p.inputs[i].Blur()
		}
		return p, p.inputs[0].Focus()
	case "s":
		if len(p.tasks) > 0 {
			task := p.tasks[p.cursor]
			if task.Done() {
				p.status = fmt.Sprintf("%q is already complete", task.Name)
				return p, nil
			}
			return p, p.setStatus(task, task.NextStatus())
		}
	case "h":
		if len(p.tasks) > 0 {
			task := p.tasks[p.cursor]
			if task.Done() {
				p.status = fmt.Sprintf("%q is already complete", task.Name)
				return p, nil
			}
			return p, p.setStatus(task, model.TaskOnHold)
		}
	case "o":
		if len(p.tasks) > 0 && p.tasks[p.cursor].Done() {
			return p, p.setStatus(p.tasks[p.cursor], model.TaskInProgress)
		}
	case "d":
		if len(p.tasks) > 0 {
			p.mode = tasksConfirmingDelete
		}
	case "r":
		return p, p.load
	}

	return p, nil
}

func (p TasksPanel) setStatus(task model.Task, status model.TaskStatus) tea.Cmd {
	return func() tea.Msg {
		if err := p.db.SetTaskStatus(task.ID, status); err != nil {
			return taskMutatedMsg{err: err}
		}
		return taskMutatedMsg{status: fmt.Sprintf("%q → %s", task.Name, status)}
	}
}

func (p TasksPanel) updateAdding(msg tea.KeyMsg) (TasksPanel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		p.mode = tasksBrowsing
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
		in := model.CreateTaskInput{
			ProjectID: p.project.ID,
			Name:      strings.TrimSpace(p.inputs[0].Value()),
		}
		prereqText := strings.TrimSpace(p.inputs[1].Value())
		if prereqText != "" {
			id, err := strconv.ParseInt(prereqText, 10, 64)
			if err != nil {
				p.errMsg = "prerequisite must be a task ID"
				return p, nil
			}
			in.PrerequisiteID = &id
		}
		p.mode = tasksBrowsing
		return p, func() tea.Msg {
			t, err := p.db.CreateTask(in)
			if err != nil {
				return taskMutatedMsg{err: err}
			}
			return taskMutatedMsg{status: fmt.Sprintf("added task %q", t.Name)}
		}
	}

	var cmd tea.Cmd
	p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
	return p, cmd
}

func (p TasksPanel) updateConfirmingDelete(msg tea.KeyMsg) (TasksPanel, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		p.mode = tasksBrowsing
		task := p.tasks[p.cursor]
		return p, func() tea.Msg {
			if err := p.db.DeleteTask(task.ID); err != nil {
				return taskMutatedMsg{err: err}
			}
			return taskMutatedMsg{status: fmt.Sprintf("deleted task %q", task.Name)}
		}
	case "n", "N", "esc":
		p.mode = tasksBrowsing
	}
	return p, nil
}

func statusGlyph(s model.TaskStatus) string {
	switch s {
	case model.TaskComplete:
		return "✓"
	case model.TaskInProgress:
		return "▶"
	case model.TaskOnHold:
		return "⏸"
	default:
		return "○"
	}
}

// View renders the task panel
func (p TasksPanel) View() string {
	var b strings.Builder

	if p.mode == tasksAdding {
		b.WriteString(p.styles.Subtitle.Render("New task"))
		b.WriteString("\n")
		labels := []string{"Name", "Prereq"}
		for i, input := range p.inputs {
			b.WriteString(fmt.Sprintf("  %s %s\n", p.styles.Label.Render(pad(labels[i]+":", 8)), input.View()))
		}
		b.WriteString(p.styles.Footer.Render("enter: add • tab: next field • esc: cancel"))
		b.WriteString("\n\n")
	}

	if len(p.tasks) == 0 {
		b.WriteString(p.styles.Subtitle.Render("No tasks yet. Press a to add one."))
		b.WriteString("\n")
	} else {
		header := fmt.Sprintf("  %s %s %s %s",
			pad("ID", 5), pad("Name", 30), pad("Status", 13), pad("Prerequisite", 24))
		b.WriteString(p.styles.Label.Render(header))
		b.WriteString("\n")

		for i, t := range p.tasks {
			prereq := "-"
			if t.PrerequisiteName != "" {
				prereq = "after " + t.PrerequisiteName
				if t.Blocked() {
					prereq = "blocked by " + t.PrerequisiteName
				}
			}
			row := fmt.Sprintf("%s %s %s %s",
				pad(fmt.Sprintf("%d", t.ID), 3),
				pad(t.Name, 30),
				pad(string(t.Status), 13),
				pad(prereq, 24))

			glyph := lipgloss.NewStyle().
				Foreground(p.thm.StatusColor(string(t.Status))).
				Render(statusGlyph(t.Status))

			switch {
			case i == p.cursor:
				b.WriteString(p.styles.RowSelected.Render("▸ ") + glyph + " " + p.styles.RowSelected.Render(row))
			case t.Done():
				b.WriteString("  " + glyph + " " + p.styles.RowDone.Render(row))
			default:
				b.WriteString("  " + glyph + " " + p.styles.RowNormal.Render(row))
			}
			b.WriteString("\n")
		}
	}

	if p.mode == tasksConfirmingDelete && len(p.tasks) > 0 {
		b.WriteString("\n")
		b.WriteString(p.styles.Warning.Render(
			fmt.Sprintf("Delete task %q? (y/n)", p.tasks[p.cursor].Name)))
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

	if p.mode == tasksBrowsing {
		b.WriteString("\n")
		b.WriteString(p.styles.Footer.Render("a: add • s: advance • h: hold • o: reopen • d: delete • r: refresh"))
	}

	return b.String()
}
