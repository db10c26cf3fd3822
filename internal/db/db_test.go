package db

import (
	"path/filepath"
	"testing"

	"github.com/mlowell/sitewise/internal/model"
)

// newTestDB opens a fresh database in a temp directory
func newTestDB(t *testing.T) *DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

// newTestProject creates a project for tests to hang records off
func newTestProject(t *testing.T, db *DB, name string) *model.Project {
	t.Helper()

	p, err := db.CreateProject(model.CreateProjectInput{
		Name:      name,
		StartDate: "2024-01-01",
		EndDate:   "2024-12-31",
	})
	if err != nil {
		t.Fatalf("Failed to create project %q: %v", name, err)
	}
	return p
}

func TestMigrationsAreIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	newTestProject(t, db, "Survives Reopen")
	db.Close()

	// Re-opening runs migrations again against existing tables
	db, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer db.Close()

	projects, err := db.GetProjects()
	if err != nil {
		t.Fatalf("list projects: %v", err)
	}
	if len(projects) != 1 || projects[0].Name != "Survives Reopen" {
		t.Fatalf("expected project to survive reopen, got %+v", projects)
	}
}
