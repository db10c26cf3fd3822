// Package export writes project reports as xlsx workbooks.
package export

import (
	"fmt"
	"strings"

	"github.com/mlowell/sitewise/internal/db"
	"github.com/xuri/excelize/v2"
)

// WriteWorkbook writes a full report workbook for one project:
// Summary, Tasks, Materials, and Daily Log sheets
func WriteWorkbook(database *db.DB, projectID int64, path string) error {
	p, err := database.GetProject(projectID)
	if err != nil {
		return err
	}
	report, err := database.ProjectReport(projectID)
	if err != nil {
		return err
	}
	tasks, err := database.GetTasksByProject(projectID)
	if err != nil {
		return err
	}
	materials, err := database.GetMaterialsByProject(projectID)
	if err != nil {
		return err
	}
	logs, err := database.GetLogEntriesByProject(projectID)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	summary := "Summary"
	f.SetSheetName("Sheet1", summary)

	setRow(f, summary, 1, "Project", p.Name)
	setRow(f, summary, 2, "Start Date", p.StartDate)
	setRow(f, summary, 3, "Est. End Date", p.EndDate)
	setRow(f, summary, 4, "Status", report.StatusLabel())
	setRow(f, summary, 5, "Tasks", report.TotalTasks)
	setRow(f, summary, 6, "Completed Tasks", report.CompletedTasks)
	setRow(f, summary, 7, "Completion %", report.CompletionPercent)
	setRow(f, summary, 8, "Total Hours", report.TotalHours)
	setRow(f, summary, 9, "Est. Material Cost", report.MaterialCost)
	if len(report.LowStock) > 0 {
		setRow(f, summary, 10, "Low Stock", strings.Join(report.LowStock, ", "))
	} else {
		setRow(f, summary, 10, "Low Stock", "all stock adequate")
	}

	sheet := "Tasks"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	writeHeader(f, sheet, "ID", "Name", "Status", "Prerequisite")
	for i, t := range tasks {
		row := i + 2
		f.SetCellValue(sheet, cell("A", row), t.ID)
		f.SetCellValue(sheet, cell("B", row), t.Name)
		f.SetCellValue(sheet, cell("C", row), string(t.Status))
		f.SetCellValue(sheet, cell("D", row), t.PrerequisiteName)
	}

	sheet = "Materials"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	writeHeader(f, sheet, "ID", "Name", "Quantity", "Unit Cost", "Threshold", "Low Stock")
	for i, m := range materials {
		row := i + 2
		f.SetCellValue(sheet, cell("A", row), m.ID)
		f.SetCellValue(sheet, cell("B", row), m.Name)
		f.SetCellValue(sheet, cell("C", row), m.Quantity)
		f.SetCellValue(sheet, cell("D", row), m.UnitCost)
		f.SetCellValue(sheet, cell("E", row), m.AlertThreshold)
		if m.LowStock() {
			f.SetCellValue(sheet, cell("F", row), "LOW")
		}
	}
	totalRow := len(materials) + 2
	f.SetCellValue(sheet, cell("B", totalRow), "Estimated Total Cost")
	f.SetCellValue(sheet, cell("D", totalRow), report.MaterialCost)

	sheet = "Daily Log"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	writeHeader(f, sheet, "Date", "Description", "Hours")
	for i, e := range logs {
		row := i + 2
		f.SetCellValue(sheet, cell("A", row), e.LogDate)
		f.SetCellValue(sheet, cell("B", row), e.Description)
		f.SetCellValue(sheet, cell("C", row), e.Hours)
	}
	totalRow = len(logs) + 2
	f.SetCellValue(sheet, cell("A", totalRow), "Total Hours")
	f.SetCellValue(sheet, cell("C", totalRow), report.TotalHours)

	return f.SaveAs(path)
}

// DefaultFilename returns the default workbook name for a project
func DefaultFilename(projectName string) string {
	slug := strings.ToLower(strings.TrimSpace(projectName))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, slug)
	slug = strings.Trim(strings.Join(strings.FieldsFunc(slug, func(r rune) bool { return r == '-' }), "-"), "-")
	if slug == "" {
		slug = "project"
	}
	return slug + "-report.xlsx"
}

func writeHeader(f *excelize.File, sheet string, headers ...string) {
	for i, h := range headers {
		col := string(rune('A' + i))
		f.SetCellValue(sheet, cell(col, 1), h)
	}
}

func setRow(f *excelize.File, sheet string, row int, label string, value interface{}) {
	f.SetCellValue(sheet, cell("A", row), label)
	f.SetCellValue(sheet, cell("B", row), value)
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
