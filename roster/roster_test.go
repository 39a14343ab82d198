// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/danielhkuo/school-admin/models"
)

// workbook builds an .xlsx file from rows of cells
func workbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			t.Fatalf("Failed to write row: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("Failed to write workbook: %v", err)
	}
	return &buf
}

func TestRead(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]any
		expected []models.Person
		wantRow  int
	}{
		{
			name: "default columns",
			rows: [][]any{
				{"Nombre", "Apellido"},
				{"Ann", "One"},
				{" Bob ", "Two"},
			},
			expected: []models.Person{{FirstName: "Ann", LastName: "One"}, {FirstName: "Bob", LastName: "Two"}},
		},
		{
			name: "header named columns",
			rows: [][]any{
				{"ID", "Last name", "First name"},
				{1, "One", "Ann"},
			},
			expected: []models.Person{{FirstName: "Ann", LastName: "One"}},
		},
		{
			name: "blank rows skipped",
			rows: [][]any{
				{"first_name", "last_name"},
				{"", ""},
				{"Ann", "One"},
			},
			expected: []models.Person{{FirstName: "Ann", LastName: "One"}},
		},
		{
			name: "missing last name",
			rows: [][]any{
				{"first_name", "last_name"},
				{"Ann", "One"},
				{"Bob"},
			},
			wantRow: 3,
		},
		{
			name:     "header only",
			rows:     [][]any{{"first_name", "last_name"}},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			people, err := Read(workbook(t, tt.rows))

			if tt.wantRow != 0 {
				var rowErr *RowError
				if !errors.As(err, &rowErr) {
					t.Fatalf("expected RowError, got %v", err)
				}
				if rowErr.Row != tt.wantRow {
					t.Errorf("expected row %d, got %d", tt.wantRow, rowErr.Row)
				}
				return
			}

			if err != nil {
				t.Fatal(err)
			}
			if len(people) != len(tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, people)
			}
			for i := range people {
				if people[i] != tt.expected[i] {
					t.Errorf("row %d: expected %+v, got %+v", i, tt.expected[i], people[i])
				}
			}
		})
	}
}

func TestRead_NotAWorkbook(t *testing.T) {
	if _, err := Read(bytes.NewReader([]byte("not a spreadsheet"))); err == nil {
		t.Error("expected error for invalid workbook")
	}
}

func TestWriteThenRead(t *testing.T) {
	students := []models.Student{
		{ID: 4, Person: models.Person{FirstName: "Max", LastName: "Adams"}, ClassroomID: 1},
		{ID: 2, Person: models.Person{FirstName: "Zoe", LastName: "Brown"}, ClassroomID: 9},
	}
	classrooms := map[int64]models.Classroom{1: {ID: 1, Name: "1A"}}

	var buf bytes.Buffer
	if err := Write(&buf, students, classrooms); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[1][3] != "Max Adams" || rows[1][4] != "1A" {
		t.Errorf("unexpected first row: %v", rows[1])
	}
	if rows[2][4] != "9" {
		t.Errorf("unknown classroom should be written as its id, got %v", rows[2])
	}

	people, err := Read(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if len(people) != 2 || people[0] != students[0].Person || people[1] != students[1].Person {
		t.Errorf("read back %+v", people)
	}
}
