package db

import (
	"database/sql"

	"github.com/mlowell/sitewise/internal/model"
)

// GetLogEntriesByProject returns a project's daily log, newest date
// first with newer entries winning ties
func (db *DB) GetLogEntriesByProject(projectID int64) ([]model.LogEntry, error) {
	rows, err := db.Query(`
		SELECT id, project_id, log_date, description, hours_worked
		FROM daily_log
		WHERE project_id = ?
		ORDER BY log_date DESC, id DESC
	`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.LogEntry
	for rows.Next() {
		var e model.LogEntry
		var description *string
		var hours *float64
		err := rows.Scan(&e.ID, &e.ProjectID, &e.LogDate, &description, &hours)
		if err != nil {
			return nil, err
		}
		if description != nil {
			e.Description = *description
		}
		if hours != nil {
			e.Hours = *hours
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// GetLogEntry returns a single log entry by ID
func (db *DB) GetLogEntry(id int64) (*model.LogEntry, error) {
	var e model.LogEntry
	var description *string
	var hours *float64

	err := db.QueryRow(`
		SELECT id, project_id, log_date, description, hours_worked
		FROM daily_log WHERE id = ?
	`, id).Scan(&e.ID, &e.ProjectID, &e.LogDate, &description, &hours)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if description != nil {
		e.Description = *description
	}
	if hours != nil {
		e.Hours = *hours
	}

	return &e, nil
}

// CreateLogEntry records a day of work. Entries are immutable once
// created; the only later operation is deletion.
func (db *DB) CreateLogEntry(in model.CreateLogEntryInput) (*model.LogEntry, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	res, err := db.Exec(`
		INSERT INTO daily_log (project_id, log_date, description, hours_worked)
		VALUES (?, ?, ?, ?)
	`, in.ProjectID, in.LogDate, in.Description, in.Hours)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &model.LogEntry{
		ID:          id,
		ProjectID:   in.ProjectID,
		LogDate:     in.LogDate,
		Description: in.Description,
		Hours:       in.Hours,
	}, nil
}

// DeleteLogEntry deletes a log entry
func (db *DB) DeleteLogEntry(id int64) error {
	if _, err := db.GetLogEntry(id); err != nil {
		return err
	}
	_, err := db.Exec(`DELETE FROM daily_log WHERE id = ?`, id)
	return err
}
