package cli

import (
	"context"
	"fmt"
)

// DeleteCommand handles the task delete command
type DeleteCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute removes the task identified by idArg
func (c *DeleteCommand) Execute(ctx context.Context, idArg string) error {
	id, err := parseTaskID(idArg)
	if err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	task, err := c.app.tasks.GetTask(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	if err := c.app.tasks.DeleteTask(ctx, id); err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	fmt.Fprintf(c.app.out, "Deleted task #%d: %s\n", task.ID, task)
	return nil
}
