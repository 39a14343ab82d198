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

const colClassroom = "idClassroom"

type StudentStore struct {
	db *sqlx.DB
}

func NewStudentStore(db *sqlx.DB) *StudentStore {
	return &StudentStore{db: db}
}

// Create inserts a student into an existing classroom.
func (s *StudentStore) Create(ctx context.Context, st models.Student) (models.Student, error) {
	if err := st.Validate(); err != nil {
		return models.Student{}, err
	}

	err := withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		if err := requireParent(ctx, tx, models.TableStudents, colClassroom, models.TableClassrooms, st.ClassroomID); err != nil {
			return err
		}
		return insertStudent(ctx, tx, &st)
	})
	if err != nil {
		return models.Student{}, err
	}

	slog.Info("student created", "student_id", st.ID, "classroom_id", st.ClassroomID)
	return st, nil
}

func insertStudent(ctx context.Context, tx *sqlx.Tx, st *models.Student) error {
	err := tx.QueryRowxContext(ctx, tx.Rebind(`
		INSERT INTO students (first_name, last_name, "idClassroom")
		VALUES (?, ?, ?)
		RETURNING id
	`), st.FirstName, st.LastName, st.ClassroomID).Scan(&st.ID)
	if err != nil {
		return mapWriteError(err, "insert", models.TableStudents, colClassroom, st.ClassroomID)
	}
	return nil
}

// Import inserts every person as a student of the classroom in a single
// transaction. Nothing is written if any row fails.
func (s *StudentStore) Import(ctx context.Context, classroomID int64, people []models.Person) ([]models.Student, error) {
	students := make([]models.Student, 0, len(people))
	for i, p := range people {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		students = append(students, models.Student{Person: p, ClassroomID: classroomID})
	}

	err := withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		if err := requireParent(ctx, tx, models.TableStudents, colClassroom, models.TableClassrooms, classroomID); err != nil {
			return err
		}
		for i := range students {
			if err := insertStudent(ctx, tx, &students[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("students imported", "classroom_id", classroomID, "count", len(students))
	return students, nil
}

func (s *StudentStore) Get(ctx context.Context, id int64) (models.Student, error) {
	var st models.Student
	err := s.db.GetContext(ctx, &st, s.db.Rebind(Students.Query("id = ?")), id)
	if err != nil {
		return models.Student{}, notFound(err, models.TableStudents, id)
	}
	return st, nil
}

// List returns students in insertion order.
func (s *StudentStore) List(ctx context.Context) ([]models.Student, error) {
	return s.list(ctx, Students, nil)
}

func (s *StudentStore) ListByClassroom(ctx context.Context, classroomID int64) ([]models.Student, error) {
	return s.list(ctx, Students, &classroomID)
}

// ListOrdered returns students sorted by last name, ties in insertion order.
func (s *StudentStore) ListOrdered(ctx context.Context) ([]models.Student, error) {
	return s.list(ctx, OrderedAlumn, nil)
}

func (s *StudentStore) ListOrderedByClassroom(ctx context.Context, classroomID int64) ([]models.Student, error) {
	return s.list(ctx, OrderedAlumn, &classroomID)
}

// list applies the view, filtered to one classroom when classroomID is non-nil.
func (s *StudentStore) list(ctx context.Context, v View, classroomID *int64) ([]models.Student, error) {
	students := []models.Student{}

	var err error
	if classroomID == nil {
		err = s.db.SelectContext(ctx, &students, v.Query(""))
	} else {
		err = s.db.SelectContext(ctx, &students, s.db.Rebind(v.Query(`"idClassroom" = ?`)), *classroomID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return students, nil
}

// Update overwrites every field of the student with id st.ID.
func (s *StudentStore) Update(ctx context.Context, st models.Student) error {
	if err := st.Validate(); err != nil {
		return err
	}

	err := withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		if err := requireParent(ctx, tx, models.TableStudents, colClassroom, models.TableClassrooms, st.ClassroomID); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, tx.Rebind(`
			UPDATE students
			SET first_name = ?, last_name = ?, "idClassroom" = ?
			WHERE id = ?
		`), st.FirstName, st.LastName, st.ClassroomID, st.ID)
		if err != nil {
			return mapWriteError(err, "update", models.TableStudents, colClassroom, st.ClassroomID)
		}
		return checkAffected(res, models.TableStudents, st.ID)
	})
	if err != nil {
		return err
	}

	slog.Info("student updated", "student_id", st.ID)
	return nil
}

func (s *StudentStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, s.db.Rebind("DELETE FROM students WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	if err := checkAffected(res, models.TableStudents, id); err != nil {
		return err
	}

	slog.Info("student deleted", "student_id", id)
	return nil
}
