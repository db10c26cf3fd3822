package db

import (
	"errors"
	"testing"

	"github.com/mlowell/sitewise/internal/model"
)

func newTestMaterial(t *testing.T, db *DB, projectID int64, name string, qty, cost, threshold float64) *model.Material {
	t.Helper()

	m, err := db.CreateMaterial(model.CreateMaterialInput{
		ProjectID:      projectID,
		Name:           name,
		Quantity:       qty,
		UnitCost:       cost,
		AlertThreshold: threshold,
	})
	if err != nil {
		t.Fatalf("create material %q: %v", name, err)
	}
	return m
}

func TestCreateMaterialValidation(t *testing.T) {
	db := newTestDB(t)
	p := newTestProject(t, db, "Bridge")

	var verr *model.ValidationError
	if _, err := db.CreateMaterial(model.CreateMaterialInput{
		ProjectID: p.ID, Name: "",
	}); !errors.As(err, &verr) {
		t.Fatalf("expected empty name rejection, got %v", err)
	}

	if _, err := db.CreateMaterial(model.CreateMaterialInput{
		ProjectID: p.ID, Name: "Rebar", Quantity: -1,
	}); !errors.As(err, &verr) {
		t.Fatalf("expected negative quantity rejection, got %v", err)
	}
}

func TestGetMaterialsOrdersByName(t *testing.T) {
	db := newTestDB(t)
	p := newTestProject(t, db, "Bridge")

	newTestMaterial(t, db, p.ID, "Rebar", 50, 3, 10)
	newTestMaterial(t, db, p.ID, "Cement", 100, 12.5, 20)

	materials, err := db.GetMaterialsByProject(p.ID)
	if err != nil {
		t.Fatalf("list materials: %v", err)
	}
	if len(materials) != 2 {
		t.Fatalf("expected 2 materials, got %d", len(materials))
	}
	if materials[0].Name != "Cement" || materials[1].Name != "Rebar" {
		t.Fatalf("expected name-ascending order, got %q then %q", materials[0].Name, materials[1].Name)
	}
}

func TestLogConsumption(t *testing.T) {
	db := newTestDB(t)
	p := newTestProject(t, db, "Bridge")
	cement := newTestMaterial(t, db, p.ID, "Cement", 100, 12.5, 20)

	// 100 - 85 = 15, at or below the threshold of 20
	m, lowStock, err := db.LogConsumption(model.ConsumptionInput{MaterialID: cement.ID, Quantity: 85})
	if err != nil {
		t.Fatalf("log consumption: %v", err)
	}
	if m.Quantity != 15 {
		t.Fatalf("expected quantity 15, got %v", m.Quantity)
	}
	if !lowStock {
		t.Fatal("expected low-stock signal at 15 <= 20")
	}

	// Requesting more than remains fails without mutation
	_, _, err = db.LogConsumption(model.ConsumptionInput{MaterialID: cement.ID, Quantity: 50})
	var stockErr *InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if stockErr.Available != 15 || stockErr.Requested != 50 {
		t.Fatalf("unexpected error detail: %+v", stockErr)
	}

	got, err := db.GetMaterial(cement.ID)
	if err != nil {
		t.Fatalf("get material: %v", err)
	}
	if got.Quantity != 15 {
		t.Fatalf("expected quantity unchanged at 15, got %v", got.Quantity)
	}
}

func TestLogConsumptionToExactlyZero(t *testing.T) {
	db := newTestDB(t)
	p := newTestProject(t, db, "Bridge")
	sand := newTestMaterial(t, db, p.ID, "Sand", 30, 1, 0)

	m, lowStock, err := db.LogConsumption(model.ConsumptionInput{MaterialID: sand.ID, Quantity: 30})
	if err != nil {
		t.Fatalf("log consumption: %v", err)
	}
	if m.Quantity != 0 {
		t.Fatalf("expected quantity 0, got %v", m.Quantity)
	}
	if !lowStock {
		t.Fatal("expected low-stock signal at 0 <= 0")
	}
}

func TestLogConsumptionRejectsNonPositive(t *testing.T) {
	db := newTestDB(t)
	p := newTestProject(t, db, "Bridge")
	sand := newTestMaterial(t, db, p.ID, "Sand", 30, 1, 0)

	var verr *model.ValidationError
	if _, _, err := db.LogConsumption(model.ConsumptionInput{
		MaterialID: sand.ID, Quantity: 0,
	}); !errors.As(err, &verr) {
		t.Fatalf("expected zero consumption rejection, got %v", err)
	}
}

func TestUpdateQuantity(t *testing.T) {
	db := newTestDB(t)
	p := newTestProject(t, db, "Bridge")
	rebar := newTestMaterial(t, db, p.ID, "Rebar", 50, 3, 10)

	m, err := db.UpdateQuantity(model.QuantityUpdateInput{MaterialID: rebar.ID, Quantity: 80})
	if err != nil {
		t.Fatalf("update quantity: %v", err)
	}
	if m.Quantity != 80 {
		t.Fatalf("expected quantity 80, got %v", m.Quantity)
	}

	var verr *model.ValidationError
	if _, err := db.UpdateQuantity(model.QuantityUpdateInput{
		MaterialID: rebar.ID, Quantity: -5,
	}); !errors.As(err, &verr) {
		t.Fatalf("expected negative quantity rejection, got %v", err)
	}
}

func TestLowStockMaterials(t *testing.T) {
	db := newTestDB(t)
	p := newTestProject(t, db, "Bridge")

	newTestMaterial(t, db, p.ID, "Rebar", 50, 3, 10)
	newTestMaterial(t, db, p.ID, "Cement", 15, 12.5, 20)
	newTestMaterial(t, db, p.ID, "Sand", 0, 1, 0)

	names, err := db.LowStockMaterials(p.ID)
	if err != nil {
		t.Fatalf("low stock query: %v", err)
	}
	if len(names) != 2 || names[0] != "Cement" || names[1] != "Sand" {
		t.Fatalf("expected [Cement Sand], got %v", names)
	}
}

func TestDeleteMaterial(t *testing.T) {
	db := newTestDB(t)
	p := newTestProject(t, db, "Bridge")
	rebar := newTestMaterial(t, db, p.ID, "Rebar", 50, 3, 10)

	if err := db.DeleteMaterial(rebar.ID); err != nil {
		t.Fatalf("delete material: %v", err)
	}
	if _, err := db.GetMaterial(rebar.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected material gone, got %v", err)
	}
	if err := db.DeleteMaterial(rebar.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on repeat delete, got %v", err)
	}
}
