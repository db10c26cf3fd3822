package model

// Material is a consumable inventory item tracked per project
type Material struct {
	ID             int64   `json:"id"`
	ProjectID      int64   `json:"project_id"`
	Name           string  `json:"name"`
	Quantity       float64 `json:"quantity"`
	UnitCost       float64 `json:"unit_cost"`
	AlertThreshold float64 `json:"alert_threshold"`
}

// LowStock reports whether the material has fallen to or below its
// reorder threshold
func (m *Material) LowStock() bool {
	return m.Quantity <= m.AlertThreshold
}

// StockValue returns the estimated value of the remaining stock
func (m *Material) StockValue() float64 {
	return m.Quantity * m.UnitCost
}
