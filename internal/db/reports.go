package db

import (
	"github.com/mlowell/sitewise/internal/model"
)

// ProjectReport recomputes the derived metrics for a project from
// scratch: completion percentage, logged hours, estimated material
// cost, and the current low-stock set. As a side effect the stored
// project status is synced to the computed completion state.
func (db *DB) ProjectReport(projectID int64) (*model.Report, error) {
	p, err := db.GetProject(projectID)
	if err != nil {
		return nil, err
	}

	r := &model.Report{ProjectID: projectID}

	err = db.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN status = 'Complete' THEN 1 ELSE 0 END), 0)
		FROM tasks WHERE project_id = ?
	`, projectID).Scan(&r.TotalTasks, &r.CompletedTasks)
	if err != nil {
		return nil, err
	}

	if r.TotalTasks > 0 {
		r.CompletionPercent = 100 * float64(r.CompletedTasks) / float64(r.TotalTasks)
	}

	err = db.QueryRow(`
		SELECT COALESCE(SUM(hours_worked), 0) FROM daily_log WHERE project_id = ?
	`, projectID).Scan(&r.TotalHours)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`
		SELECT COALESCE(SUM(quantity * unit_cost), 0) FROM materials WHERE project_id = ?
	`, projectID).Scan(&r.MaterialCost)
	if err != nil {
		return nil, err
	}

	r.LowStock, err = db.LowStockMaterials(projectID)
	if err != nil {
		return nil, err
	}

	// Sync the stored status both ways so the registry never shows a
	// stale Completed badge after new tasks arrive
	status := model.ProjectActive
	if r.TotalTasks > 0 && r.CompletedTasks == r.TotalTasks {
		status = model.ProjectCompleted
	}
	if p.Status != status {
		if err := db.SetProjectStatus(projectID, status); err != nil {
			return nil, err
		}
	}

	return r, nil
}
