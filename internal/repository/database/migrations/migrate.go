package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
)

//go:embed sqlite/*.sql postgres/*.sql
var migrationsFS embed.FS

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      string
	Down    string
}

var migrationsTableDDL = map[string]string{
	"sqlite": `
	CREATE TABLE IF NOT EXISTS migrations (
		version INTEGER PRIMARY KEY,
		applied_at TEXT DEFAULT CURRENT_TIMESTAMP,
		dirty BOOLEAN DEFAULT FALSE
	)`,
	"postgres": `
	CREATE TABLE IF NOT EXISTS migrations (
		version INTEGER PRIMARY KEY,
		applied_at TIMESTAMPTZ DEFAULT now(),
		dirty BOOLEAN DEFAULT FALSE
	)`,
}

// RunMigrations executes all pending migrations for the given dialect ("sqlite" or "postgres").
func RunMigrations(ctx context.Context, db *sql.DB, dialect string) error {
	if err := createMigrationsTable(ctx, db, dialect); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	if err := checkDirty(ctx, db); err != nil {
		return err
	}

	migrations, err := LoadMigrations(dialect)
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	applied, err := getAppliedMigrations(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	for _, migration := range migrations {
		if !applied[migration.Version] {
			if err := applyMigration(ctx, db, migration); err != nil {
				return fmt.Errorf("failed to apply migration %d: %w", migration.Version, err)
			}
		}
	}

	return nil
}

// RollbackLast reverts the most recently applied migration and returns its version.
// It returns 0 when nothing has been applied.
func RollbackLast(ctx context.Context, db *sql.DB, dialect string) (int, error) {
	if err := checkDirty(ctx, db); err != nil {
		return 0, err
	}

	current, err := CurrentVersion(ctx, db)
	if err != nil {
		return 0, err
	}
	if current == 0 {
		return 0, nil
	}

	migrations, err := LoadMigrations(dialect)
	if err != nil {
		return 0, fmt.Errorf("failed to load migrations: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version != current {
			continue
		}
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return 0, err
		}
		if _, err := tx.ExecContext(ctx, migration.Down); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("failed to roll back migration %d: %w", current, err)
		}
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM migrations WHERE version = %d", current)); err != nil {
			tx.Rollback()
			return 0, err
		}
		return current, tx.Commit()
	}

	return 0, fmt.Errorf("no migration file for applied version %d", current)
}

// CurrentVersion returns the highest cleanly applied migration version, or 0 for a fresh database.
func CurrentVersion(ctx context.Context, db *sql.DB) (int, error) {
	var version int
	err := db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM migrations WHERE dirty = FALSE").Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

// LoadMigrations reads the embedded migrations for a dialect, ordered by version.
func LoadMigrations(dialect string) ([]Migration, error) {
	if _, ok := migrationsTableDDL[dialect]; !ok {
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}

	entries, err := migrationsFS.ReadDir(dialect)
	if err != nil {
		return nil, err
	}

	var migrations []Migration
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ".up.sql") {
			continue
		}

		version := extractVersion(entry.Name())
		if version == 0 {
			continue
		}

		upSQL, err := migrationsFS.ReadFile(path.Join(dialect, entry.Name()))
		if err != nil {
			return nil, err
		}

		downFile := strings.Replace(entry.Name(), ".up.sql", ".down.sql", 1)
		downSQL, err := migrationsFS.ReadFile(path.Join(dialect, downFile))
		if err != nil {
			return nil, err
		}

		migrations = append(migrations, Migration{
			Version: version,
			Name:    strings.TrimSuffix(entry.Name(), ".up.sql"),
			Up:      string(upSQL),
			Down:    string(downSQL),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	return migrations, nil
}

func createMigrationsTable(ctx context.Context, db *sql.DB, dialect string) error {
	ddl, ok := migrationsTableDDL[dialect]
	if !ok {
		return fmt.Errorf("unsupported dialect %q", dialect)
	}
	_, err := db.ExecContext(ctx, ddl)
	return err
}

func checkDirty(ctx context.Context, db *sql.DB) error {
	rows, err := db.QueryContext(ctx, "SELECT version FROM migrations WHERE dirty = TRUE ORDER BY version")
	if err != nil {
		return fmt.Errorf("failed to check migration state: %w", err)
	}
	defer rows.Close()

	var dirty []int
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return err
		}
		dirty = append(dirty, version)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if len(dirty) > 0 {
		return fmt.Errorf("database is in a dirty state, failed migration(s): %v", dirty)
	}
	return nil
}

func getAppliedMigrations(ctx context.Context, db *sql.DB) (map[int]bool, error) {
	rows, err := db.QueryContext(ctx, "SELECT version FROM migrations")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

// applyMigration runs Up and records the version in one transaction. When Up
// fails the version is recorded as dirty so later runs refuse to continue
// until the schema has been repaired by hand.
func applyMigration(ctx context.Context, db *sql.DB, migration Migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, migration.Up); err != nil {
		tx.Rollback()
		if markErr := markDirty(ctx, db, migration.Version); markErr != nil {
			return fmt.Errorf("%w (marking version dirty: %v)", err, markErr)
		}
		return err
	}

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("INSERT INTO migrations (version) VALUES (%d)", migration.Version)); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

func markDirty(ctx context.Context, db *sql.DB, version int) error {
	_, err := db.ExecContext(ctx, fmt.Sprintf("INSERT INTO migrations (version, dirty) VALUES (%d, TRUE)", version))
	return err
}

func extractVersion(filename string) int {
	var version int
	fmt.Sscanf(filename, "%d_", &version)
	return version
}
