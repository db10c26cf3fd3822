package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mlowell/sitewise/internal/db"
	"github.com/mlowell/sitewise/internal/model"
	"github.com/mlowell/sitewise/internal/ui/theme"
)

type registryMode int

const (
	registryBrowsing registryMode = iota
	registryCreating
	registryConfirmingDelete
)

// RegistryView lists all projects and hosts the create/delete flows
type RegistryView struct {
	db     *db.DB
	thm    theme.Theme
	styles theme.Styles

	projects []model.Project
	cursor   int
	mode     registryMode

	// Create form: name, start date, end date
	inputs []textinput.Model
	focus  int

	status string
	errMsg string

	width  int
	height int
}

type projectsLoadedMsg struct {
	projects []model.Project
	err      error
}

type projectMutatedMsg struct {
	status string
	err    error
}

// NewRegistryView creates the project registry view
func NewRegistryView(database *db.DB) RegistryView {
	thm := theme.Default()

	inputs := make([]textinput.Model, 3)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].CharLimit = 100
	}
	inputs[0].Placeholder = "Project name"
	inputs[1].Placeholder = "Start date (YYYY-MM-DD)"
	inputs[2].Placeholder = "Est. end date (YYYY-MM-DD)"

	return RegistryView{
		db:     database,
		thm:    thm,
		styles: theme.NewStyles(thm),
		inputs: inputs,
	}
}

// Init loads the project list
func (v RegistryView) Init() tea.Cmd {
	return v.load
}

func (v RegistryView) load() tea.Msg {
	projects, err := v.db.GetProjects()
	return projectsLoadedMsg{projects: projects, err: err}
}

// SetSize updates the view dimensions
func (v RegistryView) SetSize(width, height int) RegistryView {
	v.width = width
	v.height = height
	return v
}

// InputActive reports whether the view is capturing text input
func (v RegistryView) InputActive() bool {
	return v.mode != registryBrowsing
}

// Update handles messages
func (v RegistryView) Update(msg tea.Msg) (RegistryView, tea.Cmd) {
	switch msg := msg.(type) {
	case projectsLoadedMsg:
		if msg.err != nil {
			v.errMsg = msg.err.Error()
			return v, nil
		}
		v.projects = msg.projects
		if v.cursor >= len(v.projects) {
			v.cursor = max(0, len(v.projects)-1)
		}
		return v, nil

	case projectMutatedMsg:
		if msg.err != nil {
			v.errMsg = msg.err.Error()
			return v, nil
		}
		v.status = msg.status
		return v, v.load

	case tea.KeyMsg:
		switch v.mode {
		case registryCreating:
			return v.updateCreating(msg)
		case registryConfirmingDelete:
			return v.updateConfirmingDelete(msg)
		default:
			return v.updateBrowsing(msg)
		}
	}

	return v, nil
}

func (v RegistryView) updateBrowsing(msg tea.KeyMsg) (RegistryView, tea.Cmd) {
	v.status = ""
	v.errMsg = ""

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.projects)-1 {
			v.cursor++
		}
	case "g":
		v.cursor = 0
	case "G":
		v.cursor = max(0, len(v.projects)-1)
	case "a":
		v.mode = registryCreating
		v.focus = 0
		for i := range v.inputs {
			v.inputs[i].SetValue("")
			v.inputs[i].Blur()
		}
		return v, v.inputs[0].Focus()
	case "d":
		if len(v.projects) > 0 {
			v.mode = registryConfirmingDelete
		}
	case "r":
		return v, v.load
	case "enter":
		if len(v.projects) > 0 {
			project := v.projects[v.cursor]
			return v, func() tea.Msg {
				return OpenProjectMsg{Project: project}
			}
		}
	}

	return v, nil
}

func (v RegistryView) updateCreating(msg tea.KeyMsg) (RegistryView, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.mode = registryBrowsing
		return v, nil
	case "tab", "shift+tab", "up", "down":
		if msg.String() == "shift+tab" || msg.String() == "up" {
			v.focus--
		} else {
			v.focus++
		}
		if v.focus < 0 {
			v.focus = len(v.inputs) - 1
		}
		if v.focus >= len(v.inputs) {
			v.focus = 0
		}
		cmds := make([]tea.Cmd, 0, 1)
		for i := range v.inputs {
			if i == v.focus {
				cmds = append(cmds, v.inputs[i].Focus())
			} else {
				v.inputs[i].Blur()
			}
		}
		return v, tea.Batch(cmds...)
	case "enter":
		in := model.CreateProjectInput{
			Name:      strings.TrimSpace(v.inputs[0].Value()),
			StartDate: strings.TrimSpace(v.inputs[1].Value()),
			EndDate:   strings.TrimSpace(v.inputs[2].Value()),
		}
		v.mode = registryBrowsing
		return v, func() tea.Msg {
			p, err := v.db.CreateProject(in)
			if err != nil {
				return projectMutatedMsg{err: err}
			}
			return projectMutatedMsg{status: fmt.Sprintf("created project %q", p.Name)}
		}
	}

	var cmd tea.Cmd
	v.inputs[v.focus], cmd = v.inputs[v.focus].Update(msg)
	return v, cmd
}

func (v RegistryView) updateConfirmingDelete(msg tea.KeyMsg) (RegistryView, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.mode = registryBrowsing
		project := v.projects[v.cursor]
		return v, func() tea.Msg {
			if err := v.db.DeleteProject(project.ID); err != nil {
				return projectMutatedMsg{err: err}
			}
			return projectMutatedMsg{status: fmt.Sprintf("deleted project %q and all its records", project.Name)}
		}
	case "n", "N", "esc":
		v.mode = registryBrowsing
	}
	return v, nil
}

// View renders the registry
func (v RegistryView) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Projects"))
	b.WriteString("\n\n")

	if v.mode == registryCreating {
		b.WriteString(v.styles.Subtitle.Render("New project"))
		b.WriteString("\n")
		labels := []string{"Name", "Start", "End"}
		for i, input := range v.inputs {
			b.WriteString(fmt.Sprintf("  %s %s\n", v.styles.Label.Render(pad(labels[i]+":", 7)), input.View()))
		}
		b.WriteString(v.styles.Footer.Render("enter: create • tab: next field • esc: cancel"))
		b.WriteString("\n\n")
	}

	if len(v.projects) == 0 {
		b.WriteString(v.styles.Subtitle.Render("No projects yet. Press a to create one."))
		b.WriteString("\n")
	} else {
		header := fmt.Sprintf("  %s %s %s %s %s",
			pad("ID", 5), pad("Name", 28), pad("Start", 12), pad("Status", 10), pad("Tasks", 9))
		b.WriteString(v.styles.Label.Render(header))
		b.WriteString("\n")

		for i, p := range v.projects {
			row := fmt.Sprintf("%s %s %s %s %s",
				pad(fmt.Sprintf("%d", p.ID), 5),
				pad(p.Name, 28),
				pad(p.StartDate, 12),
				pad(string(p.Status), 10),
				pad(fmt.Sprintf("%d/%d done", p.CompletedCount, p.TaskCount), 9))

			if i == v.cursor {
				b.WriteString(v.styles.RowSelected.Render("▸ " + row))
			} else {
				b.WriteString(v.styles.RowNormal.Render("  " + row))
			}
			b.WriteString("\n")
		}
	}

	if v.mode == registryConfirmingDelete && len(v.projects) > 0 {
		p := v.projects[v.cursor]
		b.WriteString("\n")
		b.WriteString(v.styles.Warning.Render(
			fmt.Sprintf("Delete project %q and ALL its tasks, materials and logs? (y/n)", p.Name)))
		b.WriteString("\n")
	}

	if v.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(v.errMsg))
		b.WriteString("\n")
	} else if v.status != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Status.Render(v.status))
		b.WriteString("\n")
	}

	if v.mode == registryBrowsing {
		b.WriteString("\n")
		b.WriteString(v.styles.Footer.Render("enter: open • a: add • d: delete • r: refresh • q: quit"))
	}

	return b.String()
}
