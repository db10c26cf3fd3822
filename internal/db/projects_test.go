package db

import (
	"errors"
	"testing"

	"github.com/mlowell/sitewise/internal/model"
)

func TestCreateProjectDefaultsToActive(t *testing.T) {
	db := newTestDB(t)

	p := newTestProject(t, db, "Bridge")
	if p.ID == 0 {
		t.Fatal("expected project ID to be set")
	}
	if p.Status != model.ProjectActive {
		t.Fatalf("expected status Active, got %q", p.Status)
	}

	got, err := db.GetProject(p.ID)
	if err != nil {
		t.Fatalf("get project: %v", err)
	}
	if got.Name != "Bridge" || got.StartDate != "2024-01-01" {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestCreateProjectRejectsEmptyName(t *testing.T) {
	db := newTestDB(t)

	_, err := db.CreateProject(model.CreateProjectInput{Name: ""})
	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCreateProjectRejectsDuplicateName(t *testing.T) {
	db := newTestDB(t)

	newTestProject(t, db, "Bridge")
	_, err := db.CreateProject(model.CreateProjectInput{Name: "Bridge"})
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestGetProjectsOrdersNewestFirst(t *testing.T) {
	db := newTestDB(t)

	first := newTestProject(t, db, "First")
	second := newTestProject(t, db, "Second")

	projects, err := db.GetProjects()
	if err != nil {
		t.Fatalf("list projects: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}
	if projects[0].ID != second.ID || projects[1].ID != first.ID {
		t.Fatalf("expected id-descending order, got %d then %d", projects[0].ID, projects[1].ID)
	}
}

func TestGetProjectsCountsTasks(t *testing.T) {
	db := newTestDB(t)

	p := newTestProject(t, db, "Counts")
	a, err := db.CreateTask(model.CreateTaskInput{ProjectID: p.ID, Name: "A"})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if _, err := db.CreateTask(model.CreateTaskInput{ProjectID: p.ID, Name: "B"}); err != nil {
		t.Fatalf("create task: %v", err)
	}
	if err := db.SetTaskStatus(a.ID, model.TaskComplete); err != nil {
		t.Fatalf("complete task: %v", err)
	}

	projects, err := db.GetProjects()
	if err != nil {
		t.Fatalf("list projects: %v", err)
	}
	if projects[0].TaskCount != 2 || projects[0].CompletedCount != 1 {
		t.Fatalf("expected 2 tasks / 1 complete, got %d / %d",
			projects[0].TaskCount, projects[0].CompletedCount)
	}
}

func TestDeleteProjectCascades(t *testing.T) {
	db := newTestDB(t)

	p := newTestProject(t, db, "Doomed")
	task, err := db.CreateTask(model.CreateTaskInput{ProjectID: p.ID, Name: "Excavate"})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	// A dependent task exercises the prerequisite FK during delete
	if _, err := db.CreateTask(model.CreateTaskInput{
		ProjectID: p.ID, Name: "Pour", PrerequisiteID: &task.ID,
	}); err != nil {
		t.Fatalf("create dependent task: %v", err)
	}
	if _, err := db.CreateMaterial(model.CreateMaterialInput{
		ProjectID: p.ID, Name: "Cement", Quantity: 100,
	}); err != nil {
		t.Fatalf("create material: %v", err)
	}
	if _, err := db.CreateLogEntry(model.CreateLogEntryInput{
		ProjectID: p.ID, LogDate: "2024-03-01", Hours: 8,
	}); err != nil {
		t.Fatalf("create log entry: %v", err)
	}

	if err := db.DeleteProject(p.ID); err != nil {
		t.Fatalf("delete project: %v", err)
	}

	if _, err := db.GetProject(p.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected project gone, got %v", err)
	}

	for _, table := range []string{"tasks", "materials", "daily_log"} {
		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM "+table+" WHERE project_id = ?", p.ID).Scan(&count); err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		if count != 0 {
			t.Fatalf("expected zero %s rows after cascade, got %d", table, count)
		}
	}
}

func TestDeleteProjectMissing(t *testing.T) {
	db := newTestDB(t)

	if err := db.DeleteProject(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
