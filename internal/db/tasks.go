package db

import (
	"database/sql"

	"github.com/mlowell/sitewise/internal/model"
)

// GetTasksByProject returns a project's tasks, most recent first,
// with prerequisite names resolved for display
func (db *DB) GetTasksByProject(projectID int64) ([]model.Task, error) {
	rows, err := db.Query(`
		SELECT t.id, t.project_id, t.name, t.status, t.prerequisite_task_id, p.name, p.status
		FROM tasks t
		LEFT JOIN tasks p ON t.prerequisite_task_id = p.id
		WHERE t.project_id = ?
		ORDER BY t.id DESC
	`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		var prereqName, prereqStatus *string
		err := rows.Scan(&t.ID, &t.ProjectID, &t.Name, &t.Status, &t.PrerequisiteID, &prereqName, &prereqStatus)
		if err != nil {
			return nil, err
		}
		if prereqName != nil {
			t.PrerequisiteName = *prereqName
		}
		if prereqStatus != nil {
			t.PrerequisiteDone = model.TaskStatus(*prereqStatus) == model.TaskComplete
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// GetTask returns a single task by ID
func (db *DB) GetTask(id int64) (*model.Task, error) {
	var t model.Task
	err := db.QueryRow(`
		SELECT id, project_id, name, status, prerequisite_task_id
		FROM tasks WHERE id = ?
	`, id).Scan(&t.ID, &t.ProjectID, &t.Name, &t.Status, &t.PrerequisiteID)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// CreateTask creates a new task with status Not Started
func (db *DB) CreateTask(in model.CreateTaskInput) (*model.Task, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if in.PrerequisiteID != nil {
		if err := db.checkPrerequisite(0, in.ProjectID, *in.PrerequisiteID); err != nil {
			return nil, err
		}
	}

	res, err := db.Exec(`
		INSERT INTO tasks (project_id, name, status, prerequisite_task_id)
		VALUES (?, ?, ?, ?)
	`, in.ProjectID, in.Name, model.TaskNotStarted, in.PrerequisiteID)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &model.Task{
		ID:             id,
		ProjectID:      in.ProjectID,
		Name:           in.Name,
		Status:         model.TaskNotStarted,
		PrerequisiteID: in.PrerequisiteID,
	}, nil
}

// SetTaskStatus moves a task to a new status. Advancing to In
// Progress or Complete is gated on the prerequisite being Complete;
// a rejected update leaves the row untouched.
func (db *DB) SetTaskStatus(id int64, status model.TaskStatus) error {
	if !status.Valid() {
		return model.NewValidationError("unknown task status %q", status)
	}

	t, err := db.GetTask(id)
	if err != nil {
		return err
	}

	if status.Gated() && t.PrerequisiteID != nil {
		prereq, err := db.GetTask(*t.PrerequisiteID)
		if err != nil {
			return err
		}
		if !prereq.Done() {
			return &DependencyError{TaskName: t.Name, PrerequisiteName: prereq.Name}
		}
	}

	_, err = db.Exec(`UPDATE tasks SET status = ? WHERE id = ?`, status, id)
	return err
}

// SetTaskPrerequisite changes or clears a task's prerequisite
func (db *DB) SetTaskPrerequisite(id int64, prereqID *int64) error {
	t, err := db.GetTask(id)
	if err != nil {
		return err
	}

	if prereqID != nil {
		if err := db.checkPrerequisite(id, t.ProjectID, *prereqID); err != nil {
			return err
		}
	}

	_, err = db.Exec(`UPDATE tasks SET prerequisite_task_id = ? WHERE id = ?`, prereqID, id)
	return err
}

// DeleteTask deletes a task, clearing any references to it first
func (db *DB) DeleteTask(id int64) error {
	if _, err := db.GetTask(id); err != nil {
		return err
	}

	return db.Transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`UPDATE tasks SET prerequisite_task_id = NULL WHERE prerequisite_task_id = ?`, id); err != nil {
			return err
		}
		_, err := tx.Exec(`DELETE FROM tasks WHERE id = ?`, id)
		return err
	})
}

// checkPrerequisite validates a prerequisite assignment: the target
// must exist, belong to the same project, not be the task itself, and
// not close a prerequisite cycle. taskID is 0 for a task not yet
// inserted, which can never be part of a cycle.
func (db *DB) checkPrerequisite(taskID, projectID, prereqID int64) error {
	if taskID != 0 && prereqID == taskID {
		return model.NewValidationError("a task cannot be its own prerequisite")
	}

	prereq, err := db.GetTask(prereqID)
	if err == ErrNotFound {
		return model.NewValidationError("prerequisite task %d does not exist", prereqID)
	}
	if err != nil {
		return err
	}
	if prereq.ProjectID != projectID {
		return model.NewValidationError("prerequisite %q belongs to a different project", prereq.Name)
	}

	if taskID == 0 {
		return nil
	}

	// Walk the chain upward; hitting taskID means the assignment
	// would close a loop. Chains are short, so a plain walk is fine.
	seen := map[int64]bool{}
	cur := prereq
	for {
		if cur.ID == taskID {
			return model.NewValidationError("prerequisite would create a cycle through %q", prereq.Name)
		}
		if cur.PrerequisiteID == nil || seen[cur.ID] {
			return nil
		}
		seen[cur.ID] = true
		next, err := db.GetTask(*cur.PrerequisiteID)
		if err == ErrNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		cur = next
	}
}
