package db

import (
	"database/sql"

	"github.com/mlowell/sitewise/internal/model"
)

// GetMaterialsByProject returns a project's materials, name ascending
func (db *DB) GetMaterialsByProject(projectID int64) ([]model.Material, error) {
	rows, err := db.Query(`
		SELECT id, project_id, name, quantity, unit_cost, alert_threshold
		FROM materials
		WHERE project_id = ?
		ORDER BY name ASC
	`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var materials []model.Material
	for rows.Next() {
		var m model.Material
		err := rows.Scan(&m.ID, &m.ProjectID, &m.Name, &m.Quantity, &m.UnitCost, &m.AlertThreshold)
		if err != nil {
			return nil, err
		}
		materials = append(materials, m)
	}

	return materials, rows.Err()
}

// GetMaterial returns a single material by ID
func (db *DB) GetMaterial(id int64) (*model.Material, error) {
	var m model.Material
	err := db.QueryRow(`
		SELECT id, project_id, name, quantity, unit_cost, alert_threshold
		FROM materials WHERE id = ?
	`, id).Scan(&m.ID, &m.ProjectID, &m.Name, &m.Quantity, &m.UnitCost, &m.AlertThreshold)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &m, nil
}

// CreateMaterial adds a material with its initial stock level
func (db *DB) CreateMaterial(in model.CreateMaterialInput) (*model.Material, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	res, err := db.Exec(`
		INSERT INTO materials (project_id, name, quantity, unit_cost, alert_threshold)
		VALUES (?, ?, ?, ?, ?)
	`, in.ProjectID, in.Name, in.Quantity, in.UnitCost, in.AlertThreshold)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &model.Material{
		ID:             id,
		ProjectID:      in.ProjectID,
		Name:           in.Name,
		Quantity:       in.Quantity,
		UnitCost:       in.UnitCost,
		AlertThreshold: in.AlertThreshold,
	}, nil
}

// LogConsumption decrements a material's stock. Quantity never goes
// negative; a request past the remaining stock fails without any
// mutation. The returned flag reports whether the new level is at or
// below the alert threshold.
func (db *DB) LogConsumption(in model.ConsumptionInput) (*model.Material, bool, error) {
	if err := in.Validate(); err != nil {
		return nil, false, err
	}

	m, err := db.GetMaterial(in.MaterialID)
	if err != nil {
		return nil, false, err
	}

	remaining := m.Quantity - in.Quantity
	if remaining < 0 {
		return nil, false, &InsufficientStockError{
			Material:  m.Name,
			Available: m.Quantity,
			Requested: in.Quantity,
		}
	}

	if _, err := db.Exec(`UPDATE materials SET quantity = ? WHERE id = ?`, remaining, m.ID); err != nil {
		return nil, false, err
	}

	m.Quantity = remaining
	return m, m.LowStock(), nil
}

// UpdateQuantity replaces a material's stock level wholesale,
// used for stock-taking corrections
func (db *DB) UpdateQuantity(in model.QuantityUpdateInput) (*model.Material, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	m, err := db.GetMaterial(in.MaterialID)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(`UPDATE materials SET quantity = ? WHERE id = ?`, in.Quantity, m.ID); err != nil {
		return nil, err
	}

	m.Quantity = in.Quantity
	return m, nil
}

// DeleteMaterial deletes a material
func (db *DB) DeleteMaterial(id int64) error {
	if _, err := db.GetMaterial(id); err != nil {
		return err
	}
	_, err := db.Exec(`DELETE FROM materials WHERE id = ?`, id)
	return err
}

// LowStockMaterials returns the names of a project's materials at or
// below their alert threshold, name ascending. Empty means all stock
// is adequate.
func (db *DB) LowStockMaterials(projectID int64) ([]string, error) {
	rows, err := db.Query(`
		SELECT name FROM materials
		WHERE project_id = ? AND quantity <= alert_threshold
		ORDER BY name ASC
	`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	return names, rows.Err()
}
