// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"bytes"
	"fmt"
	"log/slog"
	"text/template"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/school-admin/models"
)

// Migration is one ordered schema step. SQL is a text/template rendered
// with the connection's Dialect.
type Migration struct {
	Name string
	SQL  string
}

// Migrations lists every schema step in the order it must be applied.
var Migrations = []Migration{
	{Name: "0001_initial", SQL: initialSchema},
	{Name: "0002_evaluations", SQL: evaluationsSchema},
}

const migrationsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
    name TEXT PRIMARY KEY,
    batch TEXT NOT NULL,
    applied_at {{.Timestamp}} NOT NULL
);
`

const initialSchema = `
-- Teachers
CREATE TABLE teachers (
    id {{.AutoID}},
    first_name VARCHAR(200) NOT NULL,
    last_name VARCHAR(200) NOT NULL,
    salary {{.Float}} NOT NULL DEFAULT 0.0 CHECK (salary >= 0)
);

-- Classrooms
CREATE TABLE classrooms (
    id {{.AutoID}},
    name VARCHAR(2) NOT NULL,
    start_time {{.TimeOfDay}} NOT NULL,
    "idTeacher" BIGINT NOT NULL DEFAULT 1 REFERENCES teachers(id) ON DELETE CASCADE
);

CREATE INDEX idx_classrooms_teacher ON classrooms("idTeacher");

-- Students
CREATE TABLE students (
    id {{.AutoID}},
    first_name VARCHAR(200) NOT NULL,
    last_name VARCHAR(200) NOT NULL,
    "idClassroom" BIGINT NOT NULL REFERENCES classrooms(id) ON DELETE CASCADE
);

CREATE INDEX idx_students_classroom ON students("idClassroom");
CREATE INDEX idx_students_last_name ON students(last_name);
`

const evaluationsSchema = `
-- Final exams
CREATE TABLE exam_finals (
    id {{.AutoID}},
    date {{.Timestamp}} NOT NULL,
    course VARCHAR(30) NOT NULL,
    evaluator VARCHAR(50) NOT NULL,
    exam_duration INTEGER NOT NULL DEFAULT 0,
    questions INTEGER NOT NULL DEFAULT 0,
    score INTEGER NOT NULL DEFAULT 0
);

-- Projects
CREATE TABLE projects (
    id {{.AutoID}},
    date {{.Timestamp}} NOT NULL,
    course VARCHAR(30) NOT NULL,
    evaluator VARCHAR(50) NOT NULL,
    project_theme VARCHAR(100) NOT NULL,
    groups_numbers INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX idx_projects_theme ON projects(project_theme);
`

func render(name, text string, d Dialect) (string, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return "", fmt.Errorf("failed to parse migration %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, d); err != nil {
		return "", fmt.Errorf("failed to render migration %s: %w", name, err)
	}
	return buf.String(), nil
}

// Migrate applies every migration not yet recorded in schema_migrations.
// Each step runs in its own transaction. Safe to call multiple times.
// It returns the names of the steps applied by this call.
func Migrate(conn *sqlx.DB) ([]string, error) {
	dialect := DialectOf(conn)

	if err := ensureMigrationsTable(conn, dialect); err != nil {
		return nil, err
	}

	done, err := appliedNames(conn)
	if err != nil {
		return nil, err
	}

	batch := uuid.NewString()
	var applied []string

	for _, m := range Migrations {
		if done[m.Name] {
			continue
		}
		if err := apply(conn, dialect, m, batch); err != nil {
			return applied, err
		}
		slog.Info("migration applied", "name", m.Name, "batch", batch)
		applied = append(applied, m.Name)
	}

	return applied, nil
}

func apply(conn *sqlx.DB, dialect Dialect, m Migration, batch string) error {
	stmt, err := render(m.Name, m.SQL, dialect)
	if err != nil {
		return err
	}

	tx, err := conn.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin migration %s: %w", m.Name, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(stmt); err != nil {
		return fmt.Errorf("failed to apply migration %s: %w", m.Name, err)
	}

	_, err = tx.Exec(tx.Rebind(`
		INSERT INTO schema_migrations (name, batch, applied_at)
		VALUES (?, ?, ?)
	`), m.Name, batch, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to record migration %s: %w", m.Name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %s: %w", m.Name, err)
	}
	return nil
}

func ensureMigrationsTable(conn *sqlx.DB, dialect Dialect) error {
	stmt, err := render("schema_migrations", migrationsTable, dialect)
	if err != nil {
		return err
	}
	if _, err := conn.Exec(stmt); err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}
	return nil
}

func appliedNames(conn *sqlx.DB) (map[string]bool, error) {
	var names []string
	if err := conn.Select(&names, "SELECT name FROM schema_migrations"); err != nil {
		return nil, fmt.Errorf("failed to read schema_migrations: %w", err)
	}
	done := make(map[string]bool, len(names))
	for _, n := range names {
		done[n] = true
	}
	return done, nil
}

// Applied lists the recorded migrations ordered by name.
func Applied(conn *sqlx.DB) ([]models.Migration, error) {
	if err := ensureMigrationsTable(conn, DialectOf(conn)); err != nil {
		return nil, err
	}

	var out []models.Migration
	err := conn.Select(&out, `
		SELECT name, batch, applied_at
		FROM schema_migrations
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list migrations: %w", err)
	}
	return out, nil
}
