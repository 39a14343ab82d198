// cliparse/cliparse_test.go
package cliparse

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "Postgres")

	cfg, err := ParseFlags([]string{"-env", "", "migrate"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected type postgres, got %s", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "postgres://test" {
		t.Errorf("expected URL from env, got %s", cfg.DatabaseURL)
	}
	if cfg.Command != "migrate" || len(cfg.Args) != 0 {
		t.Errorf("unexpected command %q %v", cfg.Command, cfg.Args)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://from-env")
	t.Setenv("DATABASE_TYPE", "postgres")

	cfg, err := ParseFlags([]string{"-t", "sqlite", "-d", "file:test.db", "-json", "-env", "", "teacher", "list"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.DatabaseURL != "file:test.db" || cfg.DatabaseType != "sqlite" {
		t.Errorf("CLI should override env, got %s %s", cfg.DatabaseType, cfg.DatabaseURL)
	}
	if !cfg.JSON {
		t.Error("expected JSON output")
	}
	if cfg.Command != "teacher" || len(cfg.Args) != 1 || cfg.Args[0] != "list" {
		t.Errorf("unexpected command %q %v", cfg.Command, cfg.Args)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_TYPE", "")

	cfg, err := ParseFlags([]string{"-env", filepath.Join(t.TempDir(), "missing.env"), "status"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DatabaseType != DefaultDatabaseType || cfg.DatabaseURL != DefaultSQLiteURL {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestParseFlags_PostgresRequiresURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := ParseFlags([]string{"-t", "postgres", "-env", "", "migrate"})
	if err == nil {
		t.Fatal("expected error without database URL")
	}
}

func TestParseFlags_NoCommand(t *testing.T) {
	t.Setenv("DATABASE_TYPE", "")

	_, err := ParseFlags([]string{"-env", ""})
	if !errors.Is(err, ErrNoCommand) {
		t.Errorf("expected ErrNoCommand, got %v", err)
	}
}

func TestParseFlags_EnvFile(t *testing.T) {
	t.Setenv("DATABASE_TYPE", "")
	os.Unsetenv("DATABASE_TYPE")
	t.Setenv("DATABASE_URL", "")
	os.Unsetenv("DATABASE_URL")

	path := filepath.Join(t.TempDir(), "test.env")
	content := "DATABASE_TYPE=postgres\nDATABASE_URL=postgres://from-file\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseFlags([]string{"-env", path, "migrate"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DatabaseURL != "postgres://from-file" || cfg.DatabaseType != "postgres" {
		t.Errorf("expected values from env file, got %+v", cfg)
	}
}
