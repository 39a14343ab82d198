// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"context"

	"github.com/danielhkuo/school-admin/models"
)

type teacherFlags struct {
	first, last string
	salary      float64
}

func parseTeacherFlags(name string, args []string) (teacherFlags, map[string]bool, error) {
	var f teacherFlags
	fs := newFlagSet(name)
	fs.StringVar(&f.first, "first", "", "First name")
	fs.StringVar(&f.last, "last", "", "Last name")
	fs.Float64Var(&f.salary, "salary", 0, "Salary")
	set, err := parseFlags(fs, args)
	return f, set, err
}

func teacherAdd(ctx context.Context, env *Env, args []string) error {
	f, set, err := parseTeacherFlags("teacher add", args)
	if err != nil {
		return err
	}
	if err := requireFlags(set, "first", "last"); err != nil {
		return err
	}

	t, err := env.Store.Teachers.Create(ctx, models.Teacher{
		Person: models.Person{FirstName: f.first, LastName: f.last},
		Salary: f.salary,
	})
	if err != nil {
		return err
	}
	return printTeachers(env, []models.Teacher{t})
}

func teacherList(ctx context.Context, env *Env, args []string) error {
	teachers, err := env.Store.Teachers.List(ctx)
	if err != nil {
		return err
	}
	return printTeachers(env, teachers)
}

func teacherGet(ctx context.Context, env *Env, args []string) error {
	id, err := onlyID(args)
	if err != nil {
		return err
	}
	t, err := env.Store.Teachers.Get(ctx, id)
	if err != nil {
		return err
	}
	return printTeachers(env, []models.Teacher{t})
}

func teacherUpdate(ctx context.Context, env *Env, args []string) error {
	id, rest, err := splitID(args)
	if err != nil {
		return err
	}
	f, set, err := parseTeacherFlags("teacher update", rest)
	if err != nil {
		return err
	}

	t, err := env.Store.Teachers.Get(ctx, id)
	if err != nil {
		return err
	}
	if set["first"] {
		t.FirstName = f.first
	}
	if set["last"] {
		t.LastName = f.last
	}
	if set["salary"] {
		t.Salary = f.salary
	}

	if err := env.Store.Teachers.Update(ctx, t); err != nil {
		return err
	}
	return printTeachers(env, []models.Teacher{t})
}

func teacherDelete(ctx context.Context, env *Env, args []string) error {
	id, err := onlyID(args)
	if err != nil {
		return err
	}
	cascade, err := env.Store.Teachers.Delete(ctx, id)
	if err != nil {
		return err
	}
	return printDeleted(env, deleteResult{Table: models.TableTeachers, ID: id, Cascade: &cascade})
}
