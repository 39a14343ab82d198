// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/danielhkuo/school-admin/models"
	"github.com/danielhkuo/school-admin/roster"
)

func rosterFile(rest []string) (string, error) {
	if len(rest) != 1 {
		return "", fmt.Errorf("%w: exactly one file required", ErrUsage)
	}
	return rest[0], nil
}

func rosterImport(ctx context.Context, env *Env, args []string) error {
	var classroomID int64
	fs := newFlagSet("roster import")
	fs.Int64Var(&classroomID, "classroom", 0, "Classroom ID")
	set, err := parseFlags(fs, args)
	if err != nil {
		return err
	}
	if err := requireFlags(set, "classroom"); err != nil {
		return err
	}
	path, err := rosterFile(fs.Args())
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open roster: %w", err)
	}
	defer f.Close()

	people, err := roster.Read(f)
	if err != nil {
		return err
	}

	students, err := env.Store.Students.Import(ctx, classroomID, people)
	if err != nil {
		return err
	}
	return printStudents(env, students)
}

func rosterExport(ctx context.Context, env *Env, args []string) error {
	var classroomID int64
	fs := newFlagSet("roster export")
	fs.Int64Var(&classroomID, "classroom", 0, "Classroom ID (default all)")
	set, err := parseFlags(fs, args)
	if err != nil {
		return err
	}
	path, err := rosterFile(fs.Args())
	if err != nil {
		return err
	}

	var students []models.Student
	if set["classroom"] {
		students, err = env.Store.Students.ListOrderedByClassroom(ctx, classroomID)
	} else {
		students, err = env.Store.Students.ListOrdered(ctx)
	}
	if err != nil {
		return err
	}

	classrooms, err := env.Store.Classrooms.List(ctx)
	if err != nil {
		return err
	}
	byID := make(map[int64]models.Classroom, len(classrooms))
	for _, c := range classrooms {
		byID[c.ID] = c
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create roster: %w", err)
	}
	if err := roster.Write(out, students, byID); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close roster: %w", err)
	}

	return message(env, "exported %d students to %s", len(students), path)
}
