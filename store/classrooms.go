// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/school-admin/models"
)

const colTeacher = "idTeacher"

type ClassroomStore struct {
	db *sqlx.DB
}

func NewClassroomStore(db *sqlx.DB) *ClassroomStore {
	return &ClassroomStore{db: db}
}

// Create inserts a classroom. A zero TeacherID means the default teacher
// (id 1), which must exist.
func (s *ClassroomStore) Create(ctx context.Context, c models.Classroom) (models.Classroom, error) {
	if c.TeacherID == 0 {
		c.TeacherID = models.DefaultTeacherID
	}
	if err := c.Validate(); err != nil {
		return models.Classroom{}, err
	}

	err := withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		if err := requireParent(ctx, tx, models.TableClassrooms, colTeacher, models.TableTeachers, c.TeacherID); err != nil {
			return err
		}

		err := tx.QueryRowxContext(ctx, tx.Rebind(`
			INSERT INTO classrooms ("idTeacher", name, start_time)
			VALUES (?, ?, ?)
			RETURNING id
		`), c.TeacherID, c.Name, c.StartTime).Scan(&c.ID)
		if err != nil {
			return mapWriteError(err, "insert", models.TableClassrooms, colTeacher, c.TeacherID)
		}
		return nil
	})
	if err != nil {
		return models.Classroom{}, err
	}

	slog.Info("classroom created", "classroom_id", c.ID, "teacher_id", c.TeacherID, "name", c.Name)
	return c, nil
}

func (s *ClassroomStore) Get(ctx context.Context, id int64) (models.Classroom, error) {
	var c models.Classroom
	err := s.db.GetContext(ctx, &c, s.db.Rebind(Classrooms.Query("id = ?")), id)
	if err != nil {
		return models.Classroom{}, notFound(err, models.TableClassrooms, id)
	}
	return c, nil
}

func (s *ClassroomStore) List(ctx context.Context) ([]models.Classroom, error) {
	classrooms := []models.Classroom{}
	if err := s.db.SelectContext(ctx, &classrooms, Classrooms.Query("")); err != nil {
		return nil, fmt.Errorf("failed to list classrooms: %w", err)
	}
	return classrooms, nil
}

func (s *ClassroomStore) ListByTeacher(ctx context.Context, teacherID int64) ([]models.Classroom, error) {
	classrooms := []models.Classroom{}
	err := s.db.SelectContext(ctx, &classrooms, s.db.Rebind(Classrooms.Query(`"idTeacher" = ?`)), teacherID)
	if err != nil {
		return nil, fmt.Errorf("failed to list classrooms for teacher %d: %w", teacherID, err)
	}
	return classrooms, nil
}

// Update overwrites every field of the classroom with id c.ID. Moving it
// to another teacher requires that teacher to exist.
func (s *ClassroomStore) Update(ctx context.Context, c models.Classroom) error {
	if c.TeacherID == 0 {
		c.TeacherID = models.DefaultTeacherID
	}
	if err := c.Validate(); err != nil {
		return err
	}

	err := withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		if err := requireParent(ctx, tx, models.TableClassrooms, colTeacher, models.TableTeachers, c.TeacherID); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, tx.Rebind(`
			UPDATE classrooms
			SET "idTeacher" = ?, name = ?, start_time = ?
			WHERE id = ?
		`), c.TeacherID, c.Name, c.StartTime, c.ID)
		if err != nil {
			return mapWriteError(err, "update", models.TableClassrooms, colTeacher, c.TeacherID)
		}
		return checkAffected(res, models.TableClassrooms, c.ID)
	})
	if err != nil {
		return err
	}

	slog.Info("classroom updated", "classroom_id", c.ID)
	return nil
}

// Delete removes the classroom and, through the foreign key, its students.
// The teacher and other classrooms are untouched.
func (s *ClassroomStore) Delete(ctx context.Context, id int64) (Cascade, error) {
	var c Cascade

	err := withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &c.Students, tx.Rebind(`
			SELECT COUNT(*) FROM students WHERE "idClassroom" = ?
		`), id)
		if err != nil {
			return fmt.Errorf("failed to count students: %w", err)
		}

		res, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM classrooms WHERE id = ?"), id)
		if err != nil {
			return fmt.Errorf("failed to delete classroom: %w", err)
		}
		return checkAffected(res, models.TableClassrooms, id)
	})
	if err != nil {
		return Cascade{}, err
	}

	slog.Info("classroom deleted", "classroom_id", id, "students", c.Students)
	return c, nil
}
