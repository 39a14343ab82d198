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

type TeacherStore struct {
	db *sqlx.DB
}

func NewTeacherStore(db *sqlx.DB) *TeacherStore {
	return &TeacherStore{db: db}
}

// Cascade counts the child rows removed along with a deleted parent.
type Cascade struct {
	Classrooms int `json:"classrooms"`
	Students   int `json:"students"`
}

// Create inserts a teacher and returns it with its new id.
func (s *TeacherStore) Create(ctx context.Context, t models.Teacher) (models.Teacher, error) {
	if err := t.Validate(); err != nil {
		return models.Teacher{}, err
	}

	err := s.db.QueryRowxContext(ctx, s.db.Rebind(`
		INSERT INTO teachers (first_name, last_name, salary)
		VALUES (?, ?, ?)
		RETURNING id
	`), t.FirstName, t.LastName, t.Salary).Scan(&t.ID)
	if err != nil {
		return models.Teacher{}, fmt.Errorf("failed to insert teacher: %w", err)
	}

	slog.Info("teacher created", "teacher_id", t.ID, "name", t.FullName())
	return t, nil
}

func (s *TeacherStore) Get(ctx context.Context, id int64) (models.Teacher, error) {
	var t models.Teacher
	err := s.db.GetContext(ctx, &t, s.db.Rebind(Teachers.Query("id = ?")), id)
	if err != nil {
		return models.Teacher{}, notFound(err, models.TableTeachers, id)
	}
	return t, nil
}

func (s *TeacherStore) List(ctx context.Context) ([]models.Teacher, error) {
	teachers := []models.Teacher{}
	if err := s.db.SelectContext(ctx, &teachers, Teachers.Query("")); err != nil {
		return nil, fmt.Errorf("failed to list teachers: %w", err)
	}
	return teachers, nil
}

// Update overwrites every field of the teacher with id t.ID.
func (s *TeacherStore) Update(ctx context.Context, t models.Teacher) error {
	if err := t.Validate(); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, s.db.Rebind(`
		UPDATE teachers
		SET first_name = ?, last_name = ?, salary = ?
		WHERE id = ?
	`), t.FirstName, t.LastName, t.Salary, t.ID)
	if err != nil {
		return fmt.Errorf("failed to update teacher: %w", err)
	}
	if err := checkAffected(res, models.TableTeachers, t.ID); err != nil {
		return err
	}

	slog.Info("teacher updated", "teacher_id", t.ID)
	return nil
}

// Delete removes the teacher. Its classrooms and their students are
// removed by the ON DELETE CASCADE foreign keys; the returned Cascade
// counts them.
func (s *TeacherStore) Delete(ctx context.Context, id int64) (Cascade, error) {
	var c Cascade

	err := withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &c.Classrooms, tx.Rebind(`
			SELECT COUNT(*) FROM classrooms WHERE "idTeacher" = ?
		`), id)
		if err != nil {
			return fmt.Errorf("failed to count classrooms: %w", err)
		}

		err = tx.GetContext(ctx, &c.Students, tx.Rebind(`
			SELECT COUNT(*) FROM students
			WHERE "idClassroom" IN (SELECT id FROM classrooms WHERE "idTeacher" = ?)
		`), id)
		if err != nil {
			return fmt.Errorf("failed to count students: %w", err)
		}

		res, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM teachers WHERE id = ?"), id)
		if err != nil {
			return fmt.Errorf("failed to delete teacher: %w", err)
		}
		return checkAffected(res, models.TableTeachers, id)
	})
	if err != nil {
		return Cascade{}, err
	}

	slog.Info("teacher deleted", "teacher_id", id, "classrooms", c.Classrooms, "students", c.Students)
	return c, nil
}
