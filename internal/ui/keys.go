package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the root-level keybindings. Panels handle their own
// action keys inline; these are the ones the root model intercepts.
type KeyMap struct {
	TasksPanel     key.Binding
	MaterialsPanel key.Binding
	LogPanel       key.Binding
	ReportsPanel   key.Binding
	NextPanel      key.Binding

	Help key.Binding
	Back key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		TasksPanel: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "tasks"),
		),
		MaterialsPanel: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "materials"),
		),
		LogPanel: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "daily log"),
		),
		ReportsPanel: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "reports"),
		),
		NextPanel: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next panel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns short help bindings (for status bar)
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns full help bindings (for help view)
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.TasksPanel, k.MaterialsPanel, k.LogPanel, k.ReportsPanel},
		{k.NextPanel, k.Back},
		{k.Help, k.Quit},
	}
}
