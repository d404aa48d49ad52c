package config

import (
	"fmt"
	"os"

	"task-tracker/internal/logging"
	"task-tracker/internal/repository/database"
)

// CreateRepository opens the store described by the configuration.
// The testing environment always gets a private in-memory SQLite database.
func CreateRepository(config *Config) (*database.SQLRepository, error) {
	if config.IsTesting() {
		return CreateTestRepository()
	}

	dialect, err := config.Dialect()
	if err != nil {
		return nil, err
	}

	if dialect == database.DialectSQLite && config.Database.DSN == "" {
		if err := os.MkdirAll(config.Database.Dir, os.FileMode(config.Database.DirPermissions)); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	logging.Debugf("opening %s store", dialect)
	repo, err := database.Open(dialect, config.GetDatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return repo, nil
}

// CreateTestRepository creates an in-memory repository for testing
func CreateTestRepository() (*database.SQLRepository, error) {
	repo, err := database.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}

	return repo, nil
}
