package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Defaults applied when neither a flag nor the environment sets a value
const (
	DefaultDatabaseType = "sqlite"
	DefaultSQLiteURL    = "file:school.db"
	DefaultEnvFile      = ".env"
)

var ErrNoCommand = errors.New("command required")

type Config struct {
	DatabaseURL  string
	DatabaseType string
	EnvFile      string
	JSON         bool
	Verbose      bool

	// Command is the first positional argument, Args the rest
	Command string
	Args    []string
}

// ParseFlags reads global flags, falls back to environment variables and
// splits off the command. The dotenv file, if present, is loaded before
// the environment is consulted; variables already set are not overridden.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("school-admin", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.EnvFile, "env", DefaultEnvFile, "Dotenv file to load")
	fs.BoolVar(&cfg.JSON, "json", false, "Print results as JSON")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose logging")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := loadEnvFile(cfg.EnvFile); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = DefaultDatabaseType
	}
	cfg.DatabaseType = strings.ToLower(cfg.DatabaseType)

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType != DefaultDatabaseType {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = DefaultSQLiteURL
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return Config{}, ErrNoCommand
	}
	cfg.Command = rest[0]
	cfg.Args = rest[1:]

	return cfg, nil
}

// loadEnvFile loads a dotenv file. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
