package model

// TaskStatus represents the current state of a task
type TaskStatus string

const (
	TaskNotStarted TaskStatus = "Not Started"
	TaskInProgress TaskStatus = "In Progress"
	TaskOnHold     TaskStatus = "On Hold"
	TaskComplete   TaskStatus = "Complete"
)

// Valid reports whether s is one of the known task statuses
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskNotStarted, TaskInProgress, TaskOnHold, TaskComplete:
		return true
	}
	return false
}

// Gated reports whether moving a task into s requires its
// prerequisite to be complete first
func (s TaskStatus) Gated() bool {
	return s == TaskInProgress || s == TaskComplete
}

// Task represents a unit of work within a project, optionally
// gated by a single prerequisite task
type Task struct {
	ID             int64      `json:"id"`
	ProjectID      int64      `json:"project_id"`
	Name           string     `json:"name"`
	Status         TaskStatus `json:"status"`
	PrerequisiteID *int64     `json:"prerequisite_task_id,omitempty"`

	// Resolved for display (not stored)
	PrerequisiteName string `json:"prerequisite_name,omitempty"`
	PrerequisiteDone bool   `json:"prerequisite_done,omitempty"`
}

// Blocked reports whether the task is currently gated behind an
// incomplete prerequisite
func (t *Task) Blocked() bool {
	return t.PrerequisiteID != nil && !t.PrerequisiteDone && !t.Done()
}

// Done reports whether the task is complete
func (t *Task) Done() bool {
	return t.Status == TaskComplete
}

// NextStatus returns the status an "advance" action should move the
// task to, following the Not Started -> In Progress -> Complete chain.
// On Hold advances back to In Progress. Complete stays put.
func (t *Task) NextStatus() TaskStatus {
	switch t.Status {
	case TaskNotStarted:
		return TaskInProgress
	case TaskInProgress, TaskOnHold:
		return TaskComplete
	default:
		return TaskComplete
	}
}
