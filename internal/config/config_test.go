package config_test

import (
	"testing"

	"github.com/opencatalog/metacat/internal/config"
)

// Test that defaults apply when only the required variables are set
func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DATABASE", "metacat")
	t.Setenv("DB_USER", "metacat")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Port != "3000" {
		t.Errorf("Expected default port 3000, got %s", cfg.Port)
	}
	if cfg.DBType != "mysql" {
		t.Errorf("Expected default db type mysql, got %s", cfg.DBType)
	}
	if cfg.LocalServerUserID != "metacatnpa" {
		t.Errorf("Expected default server user metacatnpa, got %s", cfg.LocalServerUserID)
	}
	if cfg.MaxPageSize != 100 {
		t.Errorf("Expected default max page size 100, got %d", cfg.MaxPageSize)
	}
	if len(cfg.DefaultZones) != 0 {
		t.Errorf("Expected no default zones, got %v", cfg.DefaultZones)
	}
}

// Test that the database name is required
func TestLoadRequiresDatabase(t *testing.T) {
	t.Setenv("DB_DATABASE", "")
	t.Setenv("DB_USER", "metacat")

	if _, err := config.Load(); err == nil {
		t.Error("Expected an error when DB_DATABASE is unset")
	}
}

// Test that sqlite does not require a database user
func TestLoadSQLiteWithoutUser(t *testing.T) {
	t.Setenv("DB_TYPE", "sqlite")
	t.Setenv("DB_DATABASE", ":memory:")
	t.Setenv("DB_USER", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Failed to load sqlite config: %v", err)
	}
	if cfg.DBType != "sqlite" {
		t.Errorf("Expected db type sqlite, got %s", cfg.DBType)
	}
}

// Test that a non-sqlite database requires a user
func TestLoadRequiresUserForServerDatabases(t *testing.T) {
	t.Setenv("DB_TYPE", "postgres")
	t.Setenv("DB_DATABASE", "metacat")
	t.Setenv("DB_USER", "")

	if _, err := config.Load(); err == nil {
		t.Error("Expected an error when DB_USER is unset for postgres")
	}
}

// Test the page size guard
func TestLoadRejectsNonPositivePageSize(t *testing.T) {
	t.Setenv("DB_DATABASE", "metacat")
	t.Setenv("DB_USER", "metacat")
	t.Setenv("MAX_PAGE_SIZE", "-1")

	if _, err := config.Load(); err == nil {
		t.Error("Expected an error for a negative MAX_PAGE_SIZE")
	}
}

// Test list and boolean parsing from the environment
func TestLoadParsesListsAndBooleans(t *testing.T) {
	t.Setenv("DB_DATABASE", "metacat")
	t.Setenv("DB_USER", "metacat")
	t.Setenv("DEFAULT_ZONES", "quarantine, staging ,production")
	t.Setenv("LOG_JSON", "true")
	t.Setenv("DB_CONNECTION_LIMIT", "12")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if len(cfg.DefaultZones) != 3 || cfg.DefaultZones[1] != "staging" {
		t.Errorf("Unexpected default zones %v", cfg.DefaultZones)
	}
	if !cfg.LogJSON {
		t.Error("Expected LOG_JSON to parse as true")
	}
	if cfg.DBConnectionLimit != 12 {
		t.Errorf("Expected connection limit 12, got %d", cfg.DBConnectionLimit)
	}
}
