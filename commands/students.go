// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"context"

	"github.com/danielhkuo/school-admin/models"
)

type studentFlags struct {
	first, last string
	classroom   int64
	ordered     bool
}

func parseStudentFlags(name string, args []string) (studentFlags, map[string]bool, error) {
	var f studentFlags
	fs := newFlagSet(name)
	fs.StringVar(&f.first, "first", "", "First name")
	fs.StringVar(&f.last, "last", "", "Last name")
	fs.Int64Var(&f.classroom, "classroom", 0, "Classroom ID")
	fs.BoolVar(&f.ordered, "ordered", false, "Order by last name")
	set, err := parseFlags(fs, args)
	return f, set, err
}

func studentAdd(ctx context.Context, env *Env, args []string) error {
	f, set, err := parseStudentFlags("student add", args)
	if err != nil {
		return err
	}
	if err := requireFlags(set, "first", "last", "classroom"); err != nil {
		return err
	}

	s, err := env.Store.Students.Create(ctx, models.Student{
		Person:      models.Person{FirstName: f.first, LastName: f.last},
		ClassroomID: f.classroom,
	})
	if err != nil {
		return err
	}
	return printStudents(env, []models.Student{s})
}

func studentList(ctx context.Context, env *Env, args []string) error {
	f, set, err := parseStudentFlags("student list", args)
	if err != nil {
		return err
	}

	students := env.Store.Students
	var list []models.Student
	switch {
	case f.ordered && set["classroom"]:
		list, err = students.ListOrderedByClassroom(ctx, f.classroom)
	case f.ordered:
		list, err = students.ListOrdered(ctx)
	case set["classroom"]:
		list, err = students.ListByClassroom(ctx, f.classroom)
	default:
		list, err = students.List(ctx)
	}
	if err != nil {
		return err
	}
	return printStudents(env, list)
}

func studentGet(ctx context.Context, env *Env, args []string) error {
	id, err := onlyID(args)
	if err != nil {
		return err
	}
	s, err := env.Store.Students.Get(ctx, id)
	if err != nil {
		return err
	}
	return printStudents(env, []models.Student{s})
}

func studentUpdate(ctx context.Context, env *Env, args []string) error {
	id, rest, err := splitID(args)
	if err != nil {
		return err
	}
	f, set, err := parseStudentFlags("student update", rest)
	if err != nil {
		return err
	}

	s, err := env.Store.Students.Get(ctx, id)
	if err != nil {
		return err
	}
	if set["first"] {
		s.FirstName = f.first
	}
	if set["last"] {
		s.LastName = f.last
	}
	if set["classroom"] {
		s.ClassroomID = f.classroom
	}

	if err := env.Store.Students.Update(ctx, s); err != nil {
		return err
	}
	return printStudents(env, []models.Student{s})
}

func studentDelete(ctx context.Context, env *Env, args []string) error {
	id, err := onlyID(args)
	if err != nil {
		return err
	}
	if err := env.Store.Students.Delete(ctx, id); err != nil {
		return err
	}
	return printDeleted(env, deleteResult{Table: models.TableStudents, ID: id})
}
