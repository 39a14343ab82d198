// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/school-admin/models"
	"github.com/danielhkuo/school-admin/store"
)

// table writes aligned columns to the command output.
func table(env *Env, header []string, rows [][]string) error {
	tw := tabwriter.NewWriter(env.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func itoa(n int64) string { return fmt.Sprint(n) }

func printTeachers(env *Env, teachers []models.Teacher) error {
	if env.JSON {
		return JSONResponse(env, teachers)
	}
	rows := make([][]string, 0, len(teachers))
	for _, t := range teachers {
		rows = append(rows, []string{itoa(t.ID), t.FullName(), humanize.CommafWithDigits(t.Salary, 2)})
	}
	return table(env, []string{"ID", "NAME", "SALARY"}, rows)
}

func printClassrooms(env *Env, classrooms []models.Classroom) error {
	if env.JSON {
		return JSONResponse(env, classrooms)
	}
	rows := make([][]string, 0, len(classrooms))
	for _, c := range classrooms {
		rows = append(rows, []string{itoa(c.ID), c.Name, c.StartTime.String(), itoa(c.TeacherID)})
	}
	return table(env, []string{"ID", "NAME", "START", "TEACHER"}, rows)
}

func printStudents(env *Env, students []models.Student) error {
	if env.JSON {
		return JSONResponse(env, students)
	}
	rows := make([][]string, 0, len(students))
	for _, s := range students {
		rows = append(rows, []string{itoa(s.ID), s.LastName, s.FirstName, itoa(s.ClassroomID)})
	}
	return table(env, []string{"ID", "LAST NAME", "FIRST NAME", "CLASSROOM"}, rows)
}

func printExams(env *Env, exams []models.ExamFinal) error {
	if env.JSON {
		return JSONResponse(env, exams)
	}
	rows := make([][]string, 0, len(exams))
	for _, e := range exams {
		rows = append(rows, []string{
			itoa(e.ID), e.Course, e.Evaluator,
			fmt.Sprint(e.ExamDuration), fmt.Sprint(e.Questions), fmt.Sprint(e.Score),
			humanize.Time(e.Date),
		})
	}
	return table(env, []string{"ID", "COURSE", "EVALUATOR", "DURATION", "QUESTIONS", "SCORE", "SAVED"}, rows)
}

func printProjects(env *Env, projects []models.Project) error {
	if env.JSON {
		return JSONResponse(env, projects)
	}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			itoa(p.ID), p.ProjectTheme, p.Course, p.Evaluator,
			fmt.Sprint(p.GroupsNumbers), humanize.Time(p.Date),
		})
	}
	return table(env, []string{"ID", "THEME", "COURSE", "EVALUATOR", "GROUPS", "SAVED"}, rows)
}

func printMigrations(env *Env, migrations []models.Migration) error {
	if env.JSON {
		return JSONResponse(env, migrations)
	}
	rows := make([][]string, 0, len(migrations))
	for _, m := range migrations {
		rows = append(rows, []string{m.Name, m.Batch, humanize.Time(m.AppliedAt)})
	}
	return table(env, []string{"NAME", "BATCH", "APPLIED"}, rows)
}

type deleteResult struct {
	Table   string         `json:"table"`
	ID      int64          `json:"id"`
	Cascade *store.Cascade `json:"cascade,omitempty"`
}

func printDeleted(env *Env, res deleteResult) error {
	if env.JSON {
		return JSONResponse(env, res)
	}
	msg := fmt.Sprintf("deleted %s %d", res.Table, res.ID)
	if c := res.Cascade; c != nil {
		var parts []string
		if res.Table == models.TableTeachers {
			parts = append(parts, humanize.Comma(int64(c.Classrooms))+" classrooms")
		}
		parts = append(parts, humanize.Comma(int64(c.Students))+" students")
		msg += " (with " + strings.Join(parts, ", ") + ")"
	}
	_, err := fmt.Fprintln(env.Out, msg)
	return err
}

// message prints a plain line, or {"message": ...} in JSON mode.
func message(env *Env, format string, a ...any) error {
	msg := fmt.Sprintf(format, a...)
	if env.JSON {
		return JSONResponse(env, map[string]string{"message": msg})
	}
	_, err := fmt.Fprintln(env.Out, msg)
	return err
}
