// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/danielhkuo/school-admin/models"
)

// Store groups the per-record stores over one connection.
type Store struct {
	Teachers   *TeacherStore
	Classrooms *ClassroomStore
	Students   *StudentStore
	ExamFinals *ExamFinalStore
	Projects   *ProjectStore
}

func New(db *sqlx.DB) *Store {
	return &Store{
		Teachers:   NewTeacherStore(db),
		Classrooms: NewClassroomStore(db),
		Students:   NewStudentStore(db),
		ExamFinals: NewExamFinalStore(db),
		Projects:   NewProjectStore(db),
	}
}

// pgForeignKeyViolation is the Postgres SQLSTATE for foreign_key_violation
const pgForeignKeyViolation = "23503"

func withTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// queryer is satisfied by both *sqlx.DB and *sqlx.Tx.
type queryer interface {
	sqlx.QueryerContext
	Rebind(query string) string
}

// exists reports whether table has a row with the given id.
func exists(ctx context.Context, q queryer, table string, id int64) (bool, error) {
	var n int
	query := q.Rebind("SELECT COUNT(*) FROM " + table + " WHERE id = ?")
	if err := sqlx.GetContext(ctx, q, &n, query, id); err != nil {
		return false, fmt.Errorf("failed to check %s %d: %w", table, id, err)
	}
	return n > 0, nil
}

// requireParent fails with a ReferentialIntegrityError when the parent row
// is missing.
func requireParent(ctx context.Context, tx *sqlx.Tx, child, column, parent string, ref int64) error {
	ok, err := exists(ctx, tx, parent, ref)
	if err != nil {
		return err
	}
	if !ok {
		return &models.ReferentialIntegrityError{Table: child, Column: column, Ref: ref}
	}
	return nil
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pgForeignKeyViolation
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		code := liteErr.Code()
		if code == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY {
			return true
		}
		return code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(liteErr.Error(), "FOREIGN KEY")
	}

	return false
}

// mapWriteError turns driver foreign key failures into a
// ReferentialIntegrityError and wraps everything else.
func mapWriteError(err error, action, table, column string, ref int64) error {
	if isForeignKeyViolation(err) {
		return &models.ReferentialIntegrityError{Table: table, Column: column, Ref: ref}
	}
	return fmt.Errorf("failed to %s %s: %w", action, table, err)
}

func notFound(err error, table string, id int64) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %d: %w", table, id, models.ErrNotFound)
	}
	return fmt.Errorf("failed to query %s %d: %w", table, id, err)
}

func checkAffected(res sql.Result, table string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for %s: %w", table, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", table, id, models.ErrNotFound)
	}
	return nil
}

func utcNow() time.Time { return time.Now().UTC() }
