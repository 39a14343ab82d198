// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Database type names accepted by Open
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// Dialect holds the column types that differ between the supported stores.
type Dialect struct {
	Name      string
	Driver    string
	AutoID    string
	Float     string
	TimeOfDay string
	Timestamp string
}

var (
	SQLite = Dialect{
		Name:      TypeSQLite,
		Driver:    "sqlite",
		AutoID:    "INTEGER PRIMARY KEY AUTOINCREMENT",
		Float:     "REAL",
		TimeOfDay: "TEXT",
		Timestamp: "TIMESTAMP",
	}

	Postgres = Dialect{
		Name:      TypePostgres,
		Driver:    "postgres",
		AutoID:    "BIGSERIAL PRIMARY KEY",
		Float:     "DOUBLE PRECISION",
		TimeOfDay: "TIME",
		Timestamp: "TIMESTAMP",
	}
)

// DialectFor returns the dialect for a database type name.
func DialectFor(dbType string) (Dialect, error) {
	switch strings.ToLower(dbType) {
	case TypeSQLite, "sqlite3":
		return SQLite, nil
	case TypePostgres, "postgresql":
		return Postgres, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported database type %q", dbType)
	}
}

// DialectOf returns the dialect matching an open connection's driver.
func DialectOf(conn *sqlx.DB) Dialect {
	if conn.DriverName() == Postgres.Driver {
		return Postgres
	}
	return SQLite
}

// Open connects to the database and verifies the connection.
// SQLite connections get foreign key enforcement and a single open
// connection, so an in-memory database is shared by every query.
func Open(dbType, url string) (*sqlx.DB, error) {
	dialect, err := DialectFor(dbType)
	if err != nil {
		return nil, err
	}

	dsn := url
	if dialect.Name == TypeSQLite {
		dsn = withForeignKeys(url)
	}

	conn, err := sqlx.Open(dialect.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dialect.Name, err)
	}

	if dialect.Name == TypeSQLite {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", dialect.Name, err)
	}

	return conn, nil
}

func withForeignKeys(url string) string {
	if strings.Contains(url, "foreign_keys") {
		return url
	}
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + "_pragma=foreign_keys(1)"
}
