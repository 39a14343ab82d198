// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - DatabaseURL: SQLite or PostgreSQL connection string
  - DatabaseType: "sqlite" (default) or "postgres"
  - EnvFile: dotenv file loaded before reading the environment
  - JSON: print command results as JSON
  - Verbose: debug logging
  - Command, Args: the command to run and its arguments

# CLI Flags

	-d     Database URL
	-t     Database type
	-env   Dotenv file (default: .env)
	-json  JSON output
	-v     Verbose logging

# Environment Variables

Flags fall back to environment variables:

	DATABASE_URL  → -d
	DATABASE_TYPE → -t

Variables from the dotenv file never override ones already set, and CLI
flags take precedence over both.

# Validation

ParseFlags returns an error if:

  - the database type is postgres and no URL is given
  - no command follows the flags (ErrNoCommand)

With SQLite and no URL, file:school.db is used.

# Example

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
*/
package cliparse
