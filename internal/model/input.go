package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. Inputs are checked
// before any store access; a failed check never touches the database.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// log dates are stored as plain YYYY-MM-DD text
	v.RegisterValidation("dateformat", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", fl.Field().String())
		return err == nil
	})
	return v
}

// ValidationError describes rejected user input
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// NewValidationError builds a ValidationError with the given message
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// Validate checks an input struct against its validation tags and
// converts failures into a user-facing ValidationError
func Validate(in interface{}) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fieldMessage(fe))
		}
		return &ValidationError{msg: strings.Join(msgs, "; ")}
	}
	return err
}

func fieldMessage(fe validator.FieldError) string {
	field := fieldLabel(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "dateformat":
		return field + " must be a date in YYYY-MM-DD form"
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}

func fieldLabel(name string) string {
	switch name {
	case "ProjectID":
		return "project"
	case "MaterialID":
		return "material"
	case "LogDate":
		return "log date"
	case "UnitCost":
		return "unit cost"
	case "AlertThreshold":
		return "alert threshold"
	default:
		return strings.ToLower(name)
	}
}

// CreateProjectInput carries the fields for a new project. Start and
// end dates are kept as free text; only the name is mandatory.
type CreateProjectInput struct {
	Name      string `validate:"required"`
	StartDate string
	EndDate   string
}

// Validate checks the input
func (in CreateProjectInput) Validate() error {
	return Validate(in)
}

// CreateTaskInput carries the fields for a new task
type CreateTaskInput struct {
	ProjectID      int64  `validate:"required"`
	Name           string `validate:"required"`
	PrerequisiteID *int64
}

// Validate checks the input
func (in CreateTaskInput) Validate() error {
	return Validate(in)
}

// CreateMaterialInput carries the fields for a new material
type CreateMaterialInput struct {
	ProjectID      int64   `validate:"required"`
	Name           string  `validate:"required"`
	Quantity       float64 `validate:"min=0"`
	UnitCost       float64 `validate:"min=0"`
	AlertThreshold float64 `validate:"min=0"`
}

// Validate checks the input
func (in CreateMaterialInput) Validate() error {
	return Validate(in)
}

// ConsumptionInput carries a stock consumption request
type ConsumptionInput struct {
	MaterialID int64   `validate:"required"`
	Quantity   float64 `validate:"gt=0"`
}

// Validate checks the input
func (in ConsumptionInput) Validate() error {
	return Validate(in)
}

// QuantityUpdateInput carries a wholesale stock-taking correction
type QuantityUpdateInput struct {
	MaterialID int64   `validate:"required"`
	Quantity   float64 `validate:"min=0"`
}

// Validate checks the input
func (in QuantityUpdateInput) Validate() error {
	return Validate(in)
}

// CreateLogEntryInput carries the fields for a new daily log entry
type CreateLogEntryInput struct {
	ProjectID   int64  `validate:"required"`
	LogDate     string `validate:"required,dateformat"`
	Description string
	Hours       float64 `validate:"min=0"`
}

// Validate checks the input
func (in CreateLogEntryInput) Validate() error {
	return Validate(in)
}
