package model

import (
	"errors"
	"testing"
)

func TestValidateInputs(t *testing.T) {
	cases := []struct {
		name    string
		in      interface{ Validate() error }
		wantErr bool
	}{
		{"project ok", CreateProjectInput{Name: "Bridge"}, false},
		{"project empty name", CreateProjectInput{Name: ""}, true},

		{"task ok", CreateTaskInput{ProjectID: 1, Name: "Excavate"}, false},
		{"task empty name", CreateTaskInput{ProjectID: 1, Name: ""}, true},
		{"task no project", CreateTaskInput{Name: "Excavate"}, true},

		{"material ok", CreateMaterialInput{ProjectID: 1, Name: "Cement", Quantity: 100, UnitCost: 12.5, AlertThreshold: 20}, false},
		{"material zero values ok", CreateMaterialInput{ProjectID: 1, Name: "Sand"}, false},
		{"material negative quantity", CreateMaterialInput{ProjectID: 1, Name: "Cement", Quantity: -1}, true},
		{"material negative cost", CreateMaterialInput{ProjectID: 1, Name: "Cement", UnitCost: -0.5}, true},

		{"consumption ok", ConsumptionInput{MaterialID: 1, Quantity: 5}, false},
		{"consumption zero", ConsumptionInput{MaterialID: 1, Quantity: 0}, true},
		{"consumption negative", ConsumptionInput{MaterialID: 1, Quantity: -5}, true},

		{"quantity update zero ok", QuantityUpdateInput{MaterialID: 1, Quantity: 0}, false},
		{"quantity update negative", QuantityUpdateInput{MaterialID: 1, Quantity: -1}, true},

		{"log ok", CreateLogEntryInput{ProjectID: 1, LogDate: "2024-03-01", Hours: 8}, false},
		{"log zero hours ok", CreateLogEntryInput{ProjectID: 1, LogDate: "2024-03-01"}, false},
		{"log bad date", CreateLogEntryInput{ProjectID: 1, LogDate: "March 1st", Hours: 8}, true},
		{"log wrong date order", CreateLogEntryInput{ProjectID: 1, LogDate: "01-03-2024", Hours: 8}, true},
		{"log negative hours", CreateLogEntryInput{ProjectID: 1, LogDate: "2024-03-01", Hours: -2}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected validation to fail")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("expected validation to pass, got %v", err)
			}
			if tc.wantErr {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("expected *ValidationError, got %T", err)
				}
				if verr.Error() == "" {
					t.Fatal("expected a user-facing message")
				}
			}
		})
	}
}

func TestTaskHelpers(t *testing.T) {
	if !TaskStatus("In Progress").Valid() {
		t.Fatal("In Progress should be valid")
	}
	if TaskStatus("Finished").Valid() {
		t.Fatal("Finished is not a known status")
	}
	if !TaskInProgress.Gated() || !TaskComplete.Gated() {
		t.Fatal("In Progress and Complete are gated transitions")
	}
	if TaskOnHold.Gated() || TaskNotStarted.Gated() {
		t.Fatal("On Hold and Not Started are never gated")
	}

	task := Task{Status: TaskNotStarted}
	if task.NextStatus() != TaskInProgress {
		t.Fatalf("expected Not Started to advance to In Progress, got %q", task.NextStatus())
	}
	task.Status = TaskOnHold
	if task.NextStatus() != TaskComplete {
		t.Fatalf("expected On Hold to advance to Complete, got %q", task.NextStatus())
	}
}

func TestMaterialLowStock(t *testing.T) {
	m := Material{Quantity: 15, AlertThreshold: 20, UnitCost: 2}
	if !m.LowStock() {
		t.Fatal("15 <= 20 is low stock")
	}
	if m.StockValue() != 30 {
		t.Fatalf("expected stock value 30, got %v", m.StockValue())
	}
	m.Quantity = 21
	if m.LowStock() {
		t.Fatal("21 > 20 is not low stock")
	}
}

func TestReportStatusLabel(t *testing.T) {
	cases := []struct {
		total, done int
		want        string
	}{
		{0, 0, "Not Started"},
		{3, 0, "Not Started"},
		{3, 1, "In Progress"},
		{3, 3, "Completed"},
	}
	for _, tc := range cases {
		r := Report{TotalTasks: tc.total, CompletedTasks: tc.done}
		if got := r.StatusLabel(); got != tc.want {
			t.Errorf("%d/%d: expected %q, got %q", tc.done, tc.total, tc.want, got)
		}
	}
}
