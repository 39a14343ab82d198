// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package roster reads and writes classroom rosters as .xlsx spreadsheets.

Read expects the first sheet to hold a header row followed by one student
per row. Name columns are found by their header ("First name", "Last name",
or first_name, last_name); without those headers column A is the first name
and column B the last name, so a sheet produced by Write reads back as-is.

Write produces a single "Roster" sheet with ID, first name, last name,
full name and classroom columns.
*/
package roster

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/danielhkuo/school-admin/models"
)

// SheetName is the sheet written by Write
const SheetName = "Roster"

var Header = []any{"ID", "First name", "Last name", "Full name", "Classroom"}

var ErrEmptyWorkbook = errors.New("workbook does not contain any sheets")

// RowError reports a roster row that cannot be imported.
type RowError struct {
	Row    int // 1-based, as shown in a spreadsheet
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}

// Read parses the first sheet of a workbook into people. The header row is
// skipped, as are rows whose name cells are both blank.
func Read(r io.Reader) ([]models.Person, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close workbook", "error", err)
		}
	}()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrEmptyWorkbook
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from sheet %s: %w", sheet, err)
	}

	if len(rows) == 0 {
		return nil, nil
	}
	firstCol, lastCol := nameColumns(rows[0])

	var people []models.Person
	for i, row := range rows {
		if i == 0 {
			continue
		}

		first := cellAt(row, firstCol)
		last := cellAt(row, lastCol)

		switch {
		case first == "" && last == "":
			continue
		case first == "":
			return nil, &RowError{Row: i + 1, Reason: "missing first name"}
		case last == "":
			return nil, &RowError{Row: i + 1, Reason: "missing last name"}
		}

		people = append(people, models.Person{FirstName: first, LastName: last})
	}

	slog.Debug("roster read", "sheet", sheet, "students", len(people))
	return people, nil
}

// nameColumns finds the first and last name columns from the header row.
func nameColumns(header []string) (first, last int) {
	first, last = 0, 1
	foundFirst, foundLast := false, false

	for i, h := range header {
		key := strings.ToLower(strings.NewReplacer("_", " ", "-", " ").Replace(strings.TrimSpace(h)))
		switch key {
		case "first name", "firstname":
			if !foundFirst {
				first, foundFirst = i, true
			}
		case "last name", "lastname", "surname":
			if !foundLast {
				last, foundLast = i, true
			}
		}
	}
	return first, last
}

func cellAt(row []string, col int) string {
	if col < len(row) {
		return strings.TrimSpace(row[col])
	}
	return ""
}

// Write renders students, in the given order, to w as an .xlsx workbook.
// classrooms maps classroom ids to records for the Classroom column; ids
// missing from the map are written as numbers.
func Write(w io.Writer, students []models.Student, classrooms map[int64]models.Classroom) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close workbook", "error", err)
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := Header
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, s := range students {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		var classroom any = s.ClassroomID
		if c, ok := classrooms[s.ClassroomID]; ok {
			classroom = c.Name
		}

		row := []any{s.ID, s.FirstName, s.LastName, s.FullName(), classroom}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write student %d: %w", s.ID, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
