package cli

import (
	"context"
	"fmt"

	"task-tracker/internal/repository/database/migrations"
)

// MigrateCommand reports or rolls back the schema version
type MigrateCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewMigrateCommand creates a new migrate command handler
func NewMigrateCommand(app *App) *MigrateCommand {
	return &MigrateCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute prints the schema version. Pending migrations were already applied
// when the store was opened. With rollback the newest migration is reverted first.
func (c *MigrateCommand) Execute(ctx context.Context, rollback bool) error {
	if rollback {
		reverted, err := migrations.RollbackLast(ctx, c.app.repo.DB(), string(c.app.repo.Dialect()))
		if err != nil {
			return c.errorHandler.Handle("roll back migration", err)
		}
		if reverted == 0 {
			fmt.Fprintln(c.app.out, "No migrations to roll back")
		} else {
			fmt.Fprintf(c.app.out, "Rolled back migration %d\n", reverted)
		}
	}

	version, err := c.app.repo.SchemaVersion(ctx)
	if err != nil {
		return c.errorHandler.Handle("read schema version", err)
	}

	fmt.Fprintf(c.app.out, "Schema version: %d\n", version)
	return nil
}
