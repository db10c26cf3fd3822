package model

// ProjectStatus is the lifecycle state of a project
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "Active"
	ProjectCompleted ProjectStatus = "Completed"
)

// Project represents a construction project
type Project struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	StartDate string        `json:"start_date,omitempty"`
	EndDate   string        `json:"end_date,omitempty"`
	Status    ProjectStatus `json:"status"`

	// Computed fields (not stored)
	TaskCount      int `json:"task_count,omitempty"`
	CompletedCount int `json:"completed_count,omitempty"`
}
