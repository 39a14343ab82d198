// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the school-admin command-line tool.

school-admin keeps the records of a small school: teachers, their
classrooms, the students in each classroom, final exams and projects.

# Running

The tool uses SQLite by default:

	go run . teacher add -first Grace -last Hopper -salary 2500
	go run . classroom add -name 1A -start 08:00
	go run . student list -ordered

Or PostgreSQL:

	go run . -t postgres -d "postgres://..." migrate

# Configuration

  - DATABASE_URL (-d): connection string (default file:school.db for SQLite)
  - DATABASE_TYPE (-t): sqlite or postgres
  - -env: dotenv file loaded at startup (default .env)
  - -json: JSON output
  - -v: debug logging

# Architecture

  - models: record types, full name and question score
  - db: connections and schema migrations
  - store: CRUD, cascading deletes, ordered presets
  - roster: .xlsx import and export
  - commands: command routing and output
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
