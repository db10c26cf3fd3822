package ui

// Panel identifies one of the workspace management panels
type Panel int

const (
	PanelTasks Panel = iota
	PanelMaterials
	PanelLog
	PanelReports
)

// String returns the display name for a panel
func (p Panel) String() string {
	switch p {
	case PanelTasks:
		return "Tasks"
	case PanelMaterials:
		return "Materials"
	case PanelLog:
		return "Daily Log"
	case PanelReports:
		return "Reports"
	default:
		return "Unknown"
	}
}

// next returns the panel after p, wrapping around
func (p Panel) next() Panel {
	return Panel((int(p) + 1) % 4)
}
