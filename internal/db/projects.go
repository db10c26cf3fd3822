package db

import (
	"database/sql"

	"github.com/mlowell/sitewise/internal/model"
)

// GetProjects returns all projects, most recently created first.
// Each row carries its task counts for the registry listing.
func (db *DB) GetProjects() ([]model.Project, error) {
	rows, err := db.Query(`
		SELECT p.id, p.name, p.start_date, p.end_date, p.status,
		       (SELECT COUNT(*) FROM tasks WHERE project_id = p.id) as task_count,
		       (SELECT COUNT(*) FROM tasks WHERE project_id = p.id AND status = 'Complete') as completed_count
		FROM projects p
		ORDER BY p.id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		var p model.Project
		var startDate, endDate *string
		err := rows.Scan(&p.ID, &p.Name, &startDate, &endDate, &p.Status, &p.TaskCount, &p.CompletedCount)
		if err != nil {
			return nil, err
		}
		if startDate != nil {
			p.StartDate = *startDate
		}
		if endDate != nil {
			p.EndDate = *endDate
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

// GetProject returns a single project by ID
func (db *DB) GetProject(id int64) (*model.Project, error) {
	var p model.Project
	var startDate, endDate *string

	err := db.QueryRow(`
		SELECT id, name, start_date, end_date, status
		FROM projects WHERE id = ?
	`, id).Scan(&p.ID, &p.Name, &startDate, &endDate, &p.Status)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if startDate != nil {
		p.StartDate = *startDate
	}
	if endDate != nil {
		p.EndDate = *endDate
	}

	return &p, nil
}

// CreateProject creates a new project with status Active
func (db *DB) CreateProject(in model.CreateProjectInput) (*model.Project, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	res, err := db.Exec(`
		INSERT INTO projects (name, start_date, end_date, status)
		VALUES (?, ?, ?, ?)
	`, in.Name, in.StartDate, in.EndDate, model.ProjectActive)
	if err != nil {
		return nil, mapConstraintErr(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &model.Project{
		ID:        id,
		Name:      in.Name,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Status:    model.ProjectActive,
	}, nil
}

// SetProjectStatus updates the stored lifecycle status. Report
// recomputation is the only caller; users never edit this directly.
func (db *DB) SetProjectStatus(id int64, status model.ProjectStatus) error {
	_, err := db.Exec(`UPDATE projects SET status = ? WHERE id = ?`, status, id)
	return err
}

// DeleteProject deletes a project and every record owned by it.
// The storage layer has no cascade, so children go first: tasks,
// materials, daily log, then the project row.
func (db *DB) DeleteProject(id int64) error {
	if _, err := db.GetProject(id); err != nil {
		return err
	}

	return db.Transaction(func(tx *sql.Tx) error {
		// Prerequisite references point within the same project, so
		// clearing them first keeps the self-FK satisfied mid-delete
		if _, err := tx.Exec(`UPDATE tasks SET prerequisite_task_id = NULL WHERE project_id = ?`, id); err != nil {
			return err
		}
		if _, err := tx.Exec(`DELETE FROM tasks WHERE project_id = ?`, id); err != nil {
			return err
		}
		if _, err := tx.Exec(`DELETE FROM materials WHERE project_id = ?`, id); err != nil {
			return err
		}
		if _, err := tx.Exec(`DELETE FROM daily_log WHERE project_id = ?`, id); err != nil {
			return err
		}
		_, err := tx.Exec(`DELETE FROM projects WHERE id = ?`, id)
		return err
	})
}
