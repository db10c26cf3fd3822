package db

import (
	"errors"
	"testing"

	"github.com/mlowell/sitewise/internal/model"
)

func TestCreateLogEntryValidation(t *testing.T) {
	db := newTestDB(t)
	p := newTestProject(t, db, "Bridge")

	var verr *model.ValidationError

	cases := []model.CreateLogEntryInput{
		{ProjectID: p.ID, LogDate: "", Hours: 8},
		{ProjectID: p.ID, LogDate: "03/01/2024", Hours: 8},
		{ProjectID: p.ID, LogDate: "2024-13-40", Hours: 8},
		{ProjectID: p.ID, LogDate: "2024-03-01", Hours: -1},
	}
	for _, in := range cases {
		if _, err := db.CreateLogEntry(in); !errors.As(err, &verr) {
			t.Errorf("expected ValidationError for %+v, got %v", in, err)
		}
	}

	if _, err := db.CreateLogEntry(model.CreateLogEntryInput{
		ProjectID: p.ID, LogDate: "2024-03-01", Hours: 8, Description: "Poured footing",
	}); err != nil {
		t.Fatalf("expected valid entry to be accepted, got %v", err)
	}
}

func TestGetLogEntriesOrdersByDateDescending(t *testing.T) {
	db := newTestDB(t)
	p := newTestProject(t, db, "Bridge")

	for _, in := range []model.CreateLogEntryInput{
		{ProjectID: p.ID, LogDate: "2024-03-01", Hours: 8, Description: "excavation"},
		{ProjectID: p.ID, LogDate: "2024-03-03", Hours: 6, Description: "forms"},
		{ProjectID: p.ID, LogDate: "2024-03-02", Hours: 7.5, Description: "rebar"},
	} {
		if _, err := db.CreateLogEntry(in); err != nil {
			t.Fatalf("create log entry: %v", err)
		}
	}

	entries, err := db.GetLogEntriesByProject(p.ID)
	if err != nil {
		t.Fatalf("list log entries: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	want := []string{"2024-03-03", "2024-03-02", "2024-03-01"}
	for i, date := range want {
		if entries[i].LogDate != date {
			t.Fatalf("expected %s at position %d, got %s", date, i, entries[i].LogDate)
		}
	}
}

func TestDeleteLogEntry(t *testing.T) {
	db := newTestDB(t)
	p := newTestProject(t, db, "Bridge")

	e, err := db.CreateLogEntry(model.CreateLogEntryInput{
		ProjectID: p.ID, LogDate: "2024-03-01", Hours: 8,
	})
	if err != nil {
		t.Fatalf("create log entry: %v", err)
	}

	if err := db.DeleteLogEntry(e.ID); err != nil {
		t.Fatalf("delete log entry: %v", err)
	}
	if err := db.DeleteLogEntry(e.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on repeat delete, got %v", err)
	}
}
