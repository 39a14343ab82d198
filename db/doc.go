// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the store and applies the schema migrations.

# Opening

Open accepts a database type ("sqlite" or "postgres") and a URL:

	conn, err := db.Open("sqlite", "file:school.db")

SQLite URLs get the foreign_keys pragma appended and the pool is limited
to one connection, so cascading deletes are enforced and in-memory
databases survive between queries.

# Migrations

Migrate applies the ordered steps in Migrations that are not yet recorded
in schema_migrations:

	applied, err := db.Migrate(conn)

Each step runs in its own transaction. Every step applied by one call
shares a batch id. Safe to call multiple times.

# Tables

  - teachers: first_name, last_name, salary (>= 0)
  - classrooms: name, start_time, "idTeacher" (default 1)
  - students: first_name, last_name, "idClassroom"
  - exam_finals: date, course, evaluator, exam_duration, questions, score
  - projects: date, course, evaluator, project_theme, groups_numbers

# Relationships

	teachers 1──* classrooms 1──* students

Both foreign keys use ON DELETE CASCADE. exam_finals and projects stand
alone.
*/
package db
