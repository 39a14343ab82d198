// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/school-admin/cliparse"
	"github.com/danielhkuo/school-admin/db"
)

// TestDBURL is an in-memory SQLite database, private to each connection pool
const TestDBURL = "file::memory:"

// SetupTestDB opens a fresh in-memory database with every migration applied
func SetupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	cfg := GetTestConfig()
	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if _, err := db.Migrate(conn); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		DatabaseURL:  TestDBURL,
		DatabaseType: db.TypeSQLite,
	}
}

// CreateTestTeacher inserts a teacher and returns its ID
func CreateTestTeacher(t *testing.T, conn *sqlx.DB, first, last string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRowx(`
		INSERT INTO teachers (first_name, last_name, salary)
		VALUES (?, ?, 0)
		RETURNING id
	`, first, last).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test teacher: %v", err)
	}

	return id
}

// CreateTestClassroom inserts a classroom for a teacher and returns its ID
func CreateTestClassroom(t *testing.T, conn *sqlx.DB, teacherID int64, name string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRowx(`
		INSERT INTO classrooms ("idTeacher", name, start_time)
		VALUES (?, ?, '08:00:00')
		RETURNING id
	`, teacherID, name).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test classroom: %v", err)
	}

	return id
}

// CreateTestStudent inserts a student into a classroom and returns its ID
func CreateTestStudent(t *testing.T, conn *sqlx.DB, classroomID int64, first, last string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRowx(`
		INSERT INTO students (first_name, last_name, "idClassroom")
		VALUES (?, ?, ?)
		RETURNING id
	`, first, last, classroomID).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test student: %v", err)
	}

	return id
}

// CountRows returns the number of rows in a table
func CountRows(t *testing.T, conn *sqlx.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.Get(&n, "SELECT COUNT(*) FROM "+table); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}

	return n
}
