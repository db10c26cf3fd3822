package model

// Report is the derived status view for a single project. It is
// recomputed from scratch on every request; nothing here is cached.
type Report struct {
	ProjectID         int64    `json:"project_id"`
	TotalTasks        int      `json:"total_tasks"`
	CompletedTasks    int      `json:"completed_tasks"`
	CompletionPercent float64  `json:"completion_percent"`
	TotalHours        float64  `json:"total_hours"`
	MaterialCost      float64  `json:"estimated_material_cost"`
	LowStock          []string `json:"low_stock,omitempty"`
}

// StatusLabel returns the derived progress label for the project
func (r *Report) StatusLabel() string {
	switch {
	case r.TotalTasks > 0 && r.CompletedTasks == r.TotalTasks:
		return "Completed"
	case r.CompletedTasks > 0:
		return "In Progress"
	default:
		return "Not Started"
	}
}
