package db

import (
	"errors"
	"testing"

	"github.com/mlowell/sitewise/internal/model"
)

func TestProjectReportEmptyProject(t *testing.T) {
	db := newTestDB(t)
	p := newTestProject(t, db, "Bridge")

	r, err := db.ProjectReport(p.ID)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if r.TotalTasks != 0 || r.CompletionPercent != 0 {
		t.Fatalf("expected empty report, got %+v", r)
	}
	if r.StatusLabel() != "Not Started" {
		t.Fatalf("expected Not Started, got %q", r.StatusLabel())
	}
	if r.TotalHours != 0 || r.MaterialCost != 0 {
		t.Fatalf("expected zero totals, got %+v", r)
	}
}

func TestProjectReportMissingProject(t *testing.T) {
	db := newTestDB(t)

	if _, err := db.ProjectReport(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCompletionPercentMonotonic(t *testing.T) {
	db := newTestDB(t)
	p := newTestProject(t, db, "Bridge")

	var tasks []*model.Task
	for _, name := range []string{"Excavate", "Pour Footing", "Frame", "Roof"} {
		task, err := db.CreateTask(model.CreateTaskInput{ProjectID: p.ID, Name: name})
		if err != nil {
			t.Fatalf("create task: %v", err)
		}
		tasks = append(tasks, task)
	}

	prev := -1.0
	for i, task := range tasks {
		if err := db.SetTaskStatus(task.ID, model.TaskComplete); err != nil {
			t.Fatalf("complete task: %v", err)
		}
		r, err := db.ProjectReport(p.ID)
		if err != nil {
			t.Fatalf("report: %v", err)
		}
		if r.CompletionPercent <= prev {
			t.Fatalf("expected completion to increase, got %.1f after %.1f", r.CompletionPercent, prev)
		}
		prev = r.CompletionPercent

		if i < len(tasks)-1 && r.CompletionPercent >= 100 {
			t.Fatalf("hit 100%% with tasks remaining: %+v", r)
		}
	}
	if prev != 100 {
		t.Fatalf("expected 100%% after completing all tasks, got %.1f", prev)
	}
}

func TestReportSyncsProjectStatus(t *testing.T) {
	db := newTestDB(t)
	p := newTestProject(t, db, "Bridge")

	task, err := db.CreateTask(model.CreateTaskInput{ProjectID: p.ID, Name: "Excavate"})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if err := db.SetTaskStatus(task.ID, model.TaskComplete); err != nil {
		t.Fatalf("complete task: %v", err)
	}

	if _, err := db.ProjectReport(p.ID); err != nil {
		t.Fatalf("report: %v", err)
	}
	got, err := db.GetProject(p.ID)
	if err != nil {
		t.Fatalf("get project: %v", err)
	}
	if got.Status != model.ProjectCompleted {
		t.Fatalf("expected project marked Completed, got %q", got.Status)
	}

	// A new task reverts the stored status on the next recomputation
	if _, err := db.CreateTask(model.CreateTaskInput{ProjectID: p.ID, Name: "Frame"}); err != nil {
		t.Fatalf("create task: %v", err)
	}
	if _, err := db.ProjectReport(p.ID); err != nil {
		t.Fatalf("report: %v", err)
	}
	got, err = db.GetProject(p.ID)
	if err != nil {
		t.Fatalf("get project: %v", err)
	}
	if got.Status != model.ProjectActive {
		t.Fatalf("expected project back to Active, got %q", got.Status)
	}
}

func TestReportTotals(t *testing.T) {
	db := newTestDB(t)
	p := newTestProject(t, db, "Bridge")

	newTestMaterial(t, db, p.ID, "Cement", 100, 12.5, 20)
	newTestMaterial(t, db, p.ID, "Rebar", 50, 3, 10)

	for _, in := range []model.CreateLogEntryInput{
		{ProjectID: p.ID, LogDate: "2024-03-01", Hours: 8},
		{ProjectID: p.ID, LogDate: "2024-03-02", Hours: 7.5},
	} {
		if _, err := db.CreateLogEntry(in); err != nil {
			t.Fatalf("create log entry: %v", err)
		}
	}

	r, err := db.ProjectReport(p.ID)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if r.TotalHours != 15.5 {
		t.Fatalf("expected 15.5 hours, got %v", r.TotalHours)
	}
	// 100*12.5 + 50*3 = 1400
	if r.MaterialCost != 1400 {
		t.Fatalf("expected material cost 1400, got %v", r.MaterialCost)
	}
	if len(r.LowStock) != 0 {
		t.Fatalf("expected no low stock, got %v", r.LowStock)
	}
}

func TestReportLowStockSet(t *testing.T) {
	db := newTestDB(t)
	p := newTestProject(t, db, "Bridge")

	cement := newTestMaterial(t, db, p.ID, "Cement", 100, 12.5, 20)
	if _, _, err := db.LogConsumption(model.ConsumptionInput{
		MaterialID: cement.ID, Quantity: 85,
	}); err != nil {
		t.Fatalf("log consumption: %v", err)
	}

	r, err := db.ProjectReport(p.ID)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if len(r.LowStock) != 1 || r.LowStock[0] != "Cement" {
		t.Fatalf("expected [Cement], got %v", r.LowStock)
	}
}
