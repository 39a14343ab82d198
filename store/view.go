// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"strings"

	"github.com/danielhkuo/school-admin/models"
)

// View is a read preset over an existing table: which columns to select
// and how to order them. It owns no storage.
type View struct {
	Table    string
	Columns  []string
	Ordering []string
}

// Query builds the SELECT for the view. where is an optional condition
// using ? placeholders.
func (v View) Query(where string) string {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(v.Columns, ", "))
	b.WriteString(" FROM ")
	b.WriteString(v.Table)
	if where != "" {
		b.WriteString(" WHERE ")
		b.WriteString(where)
	}
	if len(v.Ordering) > 0 {
		b.WriteString(" ORDER BY ")
		b.WriteString(strings.Join(v.Ordering, ", "))
	}
	return b.String()
}

// OrderedBy returns a copy of the view with a different ordering.
func (v View) OrderedBy(ordering ...string) View {
	v.Ordering = ordering
	return v
}

var (
	teacherColumns   = []string{"id", "first_name", "last_name", "salary"}
	classroomColumns = []string{"id", `"idTeacher"`, "name", "start_time"}
	studentColumns   = []string{"id", "first_name", "last_name", `"idClassroom"`}
	examColumns      = []string{"id", "date", "course", "evaluator", "exam_duration", "questions", "score"}
	projectColumns   = []string{"id", "date", "course", "evaluator", "project_theme", "groups_numbers"}
)

// Default views list rows in insertion order.
var (
	Teachers   = View{Table: models.TableTeachers, Columns: teacherColumns, Ordering: []string{"id"}}
	Classrooms = View{Table: models.TableClassrooms, Columns: classroomColumns, Ordering: []string{"id"}}
	Students   = View{Table: models.TableStudents, Columns: studentColumns, Ordering: []string{"id"}}
	ExamFinals = View{Table: models.TableExamFinals, Columns: examColumns, Ordering: []string{"id"}}
	Projects   = View{Table: models.TableProjects, Columns: projectColumns, Ordering: []string{"id"}}
)

// Ordered presets. Ties fall back to insertion order.
var (
	OrderedAlumn = Students.OrderedBy("last_name ASC", "id ASC")
	ProjectProxy = Projects.OrderedBy("project_theme ASC", "id ASC")
)
