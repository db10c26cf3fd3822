package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mlowell/sitewise/internal/app"
	"github.com/mlowell/sitewise/internal/model"
	"github.com/mlowell/sitewise/internal/ui/theme"
	"github.com/mlowell/sitewise/internal/ui/views"
)

// Debug logging (enable by setting SITEWISE_DEBUG=1)
var rootDebugLog *os.File

func init() {
	if os.Getenv("SITEWISE_DEBUG") == "1" {
		rootDebugLog, _ = os.OpenFile("/tmp/sitewise-root-debug.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	}
}

func rootDebugf(format string, args ...interface{}) {
	if rootDebugLog != nil {
		fmt.Fprintf(rootDebugLog, format+"\n", args...)
		rootDebugLog.Sync()
	}
}

type screen int

const (
	screenRegistry screen = iota
	screenWorkspace
)

// RootModel is the main application model. It shows the project
// registry until a project is opened, then hosts the four workspace
// panels scoped to that project.
type RootModel struct {
	app    *app.App
	keys   KeyMap
	help   help.Model
	styles theme.Styles
	width  int
	height int

	currentScreen screen
	registry      views.RegistryView

	project     model.Project
	activePanel Panel
	tasks       views.TasksPanel
	materials   views.MaterialsPanel
	logs        views.LogsPanel
	reports     views.ReportsPanel

	helpVisible bool
}

// NewRootModel creates a new root model
func NewRootModel(application *app.App) RootModel {
	h := help.New()
	h.ShowAll = false

	return RootModel{
		app:           application,
		keys:          DefaultKeyMap(),
		help:          h,
		styles:        theme.NewStyles(theme.Default()),
		currentScreen: screenRegistry,
		registry:      views.NewRegistryView(application.DB),
	}
}

// Init initializes the model
func (m RootModel) Init() tea.Cmd {
	return m.registry.Init()
}

// openWorkspace builds the four panels scoped to the project and
// loads the initially focused one
func (m RootModel) openWorkspace(project model.Project) (RootModel, tea.Cmd) {
	rootDebugf("opening workspace for project %d (%s)", project.ID, project.Name)

	m.currentScreen = screenWorkspace
	m.project = project
	m.activePanel = PanelTasks
	m.tasks = views.NewTasksPanel(m.app.DB, project)
	m.materials = views.NewMaterialsPanel(m.app.DB, project)
	m.logs = views.NewLogsPanel(m.app.DB, project)
	m.reports = views.NewReportsPanel(m.app.DB, project)
	m = m.resizePanels()

	return m, m.tasks.Init()
}

// switchPanel focuses a workspace panel, reloading its data so every
// panel shows fresh rows after mutations elsewhere
func (m RootModel) switchPanel(p Panel) (RootModel, tea.Cmd) {
	m.activePanel = p
	switch p {
	case PanelTasks:
		return m, m.tasks.Init()
	case PanelMaterials:
		return m, m.materials.Init()
	case PanelLog:
		return m, m.logs.Init()
	default:
		return m, m.reports.Init()
	}
}

func (m RootModel) resizePanels() RootModel {
	// Reserve space for header (2 lines) and footer (2 lines)
	contentHeight := m.height - 4
	m.registry = m.registry.SetSize(m.width, contentHeight)
	m.tasks = m.tasks.SetSize(m.width, contentHeight)
	m.materials = m.materials.SetSize(m.width, contentHeight)
	m.logs = m.logs.SetSize(m.width, contentHeight)
	m.reports = m.reports.SetSize(m.width, contentHeight)
	return m
}

func (m RootModel) activeInputCapture() bool {
	if m.currentScreen == screenRegistry {
		return m.registry.InputActive()
	}
	switch m.activePanel {
	case PanelTasks:
		return m.tasks.InputActive()
	case PanelMaterials:
		return m.materials.InputActive()
	case PanelLog:
		return m.logs.InputActive()
	default:
		return m.reports.InputActive()
	}
}

// Update handles messages
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	rootDebugf("RootModel.Update received msg type: %T", msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m = m.resizePanels()
		return m, nil

	case views.OpenProjectMsg:
		return m.openWorkspace(msg.Project)

	case tea.KeyMsg:
		if !m.activeInputCapture() {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit

			case key.Matches(msg, m.keys.Help):
				m.helpVisible = !m.helpVisible
				m.help.ShowAll = m.helpVisible
				return m, nil

			case key.Matches(msg, m.keys.Back):
				if m.currentScreen == screenWorkspace {
					m.currentScreen = screenRegistry
					return m, m.registry.Init()
				}

			case m.currentScreen == screenWorkspace && key.Matches(msg, m.keys.NextPanel):
				return m.switchPanel(m.activePanel.next())

			case m.currentScreen == screenWorkspace && key.Matches(msg, m.keys.TasksPanel):
				return m.switchPanel(PanelTasks)

			case m.currentScreen == screenWorkspace && key.Matches(msg, m.keys.MaterialsPanel):
				return m.switchPanel(PanelMaterials)

			case m.currentScreen == screenWorkspace && key.Matches(msg, m.keys.LogPanel):
				return m.switchPanel(PanelLog)

			case m.currentScreen == screenWorkspace && key.Matches(msg, m.keys.ReportsPanel):
				return m.switchPanel(PanelReports)
			}
		}
	}

	return m.updateActive(msg)
}

func (m RootModel) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.currentScreen == screenRegistry {
		m.registry, cmd = m.registry.Update(msg)
		return m, cmd
	}

	switch m.activePanel {
	case PanelTasks:
		m.tasks, cmd = m.tasks.Update(msg)
	case PanelMaterials:
		m.materials, cmd = m.materials.Update(msg)
	case PanelLog:
		m.logs, cmd = m.logs.Update(msg)
	default:
		m.reports, cmd = m.reports.Update(msg)
	}

	return m, cmd
}

func (m RootModel) headerView() string {
	if m.currentScreen == screenRegistry {
		return m.styles.Header.Render("sitewise — construction projects")
	}

	var tabs []string
	for p := PanelTasks; p <= PanelReports; p++ {
		label := fmt.Sprintf("%d:%s", int(p)+1, p)
		if p == m.activePanel {
			tabs = append(tabs, m.styles.TabFocus.Render(label))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(label))
		}
	}

	title := m.styles.Header.Render(fmt.Sprintf("%s (#%d)", m.project.Name, m.project.ID))
	return lipgloss.JoinHorizontal(lipgloss.Top, title, " ", strings.Join(tabs, " "))
}

// View renders the application
func (m RootModel) View() string {
	var content string
	if m.currentScreen == screenRegistry {
		content = m.registry.View()
	} else {
		switch m.activePanel {
		case PanelTasks:
			content = m.tasks.View()
		case PanelMaterials:
			content = m.materials.View()
		case PanelLog:
			content = m.logs.View()
		default:
			content = m.reports.View()
		}
	}

	footer := m.styles.Footer.Render(m.help.View(m.keys))

	return m.headerView() + "\n\n" + content + "\n" + footer
}
