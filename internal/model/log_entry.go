package model

// LogEntry is an immutable record of work performed on a given date
type LogEntry struct {
	ID          int64   `json:"id"`
	ProjectID   int64   `json:"project_id"`
	LogDate     string  `json:"log_date"` // YYYY-MM-DD
	Description string  `json:"description,omitempty"`
	Hours       float64 `json:"hours_worked"`
}
