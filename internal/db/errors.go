package db

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned when the requested record does not exist
var ErrNotFound = errors.New("record not found")

// ErrDuplicateName is returned when a unique name constraint is violated
var ErrDuplicateName = errors.New("a project with that name already exists")

// DependencyError is returned when a task's status may not advance
// because its prerequisite is not complete
type DependencyError struct {
	TaskName         string
	PrerequisiteName string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%q is blocked: prerequisite %q is not complete", e.TaskName, e.PrerequisiteName)
}

// InsufficientStockError is returned when a consumption request
// exceeds the material's remaining quantity
type InsufficientStockError struct {
	Material  string
	Available float64
	Requested float64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock of %q: %.2f requested, %.2f available", e.Material, e.Requested, e.Available)
}

// mapConstraintErr converts a sqlite unique-constraint failure into
// ErrDuplicateName; other errors pass through untouched
func mapConstraintErr(err error) error {
	if err == nil {
		return nil
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return ErrDuplicateName
	}
	return err
}
