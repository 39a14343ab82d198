// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"context"
	"fmt"

	"github.com/danielhkuo/school-admin/models"
)

type classroomFlags struct {
	name, start string
	teacher     int64
}

func parseClassroomFlags(name string, args []string) (classroomFlags, map[string]bool, error) {
	var f classroomFlags
	fs := newFlagSet(name)
	fs.StringVar(&f.name, "name", "", "Classroom name (up to 2 characters)")
	fs.StringVar(&f.start, "start", "", "Start time HH:MM[:SS]")
	fs.Int64Var(&f.teacher, "teacher", 0, "Teacher ID (default 1)")
	set, err := parseFlags(fs, args)
	return f, set, err
}

func classroomAdd(ctx context.Context, env *Env, args []string) error {
	f, set, err := parseClassroomFlags("classroom add", args)
	if err != nil {
		return err
	}
	if err := requireFlags(set, "name", "start"); err != nil {
		return err
	}

	start, err := models.ParseTimeOfDay(f.start)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	c, err := env.Store.Classrooms.Create(ctx, models.Classroom{
		TeacherID: f.teacher,
		Name:      f.name,
		StartTime: start,
	})
	if err != nil {
		return err
	}
	return printClassrooms(env, []models.Classroom{c})
}

func classroomList(ctx context.Context, env *Env, args []string) error {
	f, set, err := parseClassroomFlags("classroom list", args)
	if err != nil {
		return err
	}

	var classrooms []models.Classroom
	if set["teacher"] {
		classrooms, err = env.Store.Classrooms.ListByTeacher(ctx, f.teacher)
	} else {
		classrooms, err = env.Store.Classrooms.List(ctx)
	}
	if err != nil {
		return err
	}
	return printClassrooms(env, classrooms)
}

func classroomGet(ctx context.Context, env *Env, args []string) error {
	id, err := onlyID(args)
	if err != nil {
		return err
	}
	c, err := env.Store.Classrooms.Get(ctx, id)
	if err != nil {
		return err
	}
	return printClassrooms(env, []models.Classroom{c})
}

func classroomUpdate(ctx context.Context, env *Env, args []string) error {
	id, rest, err := splitID(args)
	if err != nil {
		return err
	}
	f, set, err := parseClassroomFlags("classroom update", rest)
	if err != nil {
		return err
	}

	c, err := env.Store.Classrooms.Get(ctx, id)
	if err != nil {
		return err
	}
	if set["name"] {
		c.Name = f.name
	}
	if set["start"] {
		if c.StartTime, err = models.ParseTimeOfDay(f.start); err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
	}
	if set["teacher"] {
		c.TeacherID = f.teacher
	}

	if err := env.Store.Classrooms.Update(ctx, c); err != nil {
		return err
	}
	return printClassrooms(env, []models.Classroom{c})
}

func classroomDelete(ctx context.Context, env *Env, args []string) error {
	id, err := onlyID(args)
	if err != nil {
		return err
	}
	cascade, err := env.Store.Classrooms.Delete(ctx, id)
	if err != nil {
		return err
	}
	return printDeleted(env, deleteResult{Table: models.TableClassrooms, ID: id, Cascade: &cascade})
}
