package cli

import (
	"context"
	"fmt"
)

// AddCommand handles the task add command
type AddCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute inserts a task and prints its id
func (c *AddCommand) Execute(ctx context.Context, title, description string, completed bool) error {
	task, err := c.app.tasks.CreateTask(ctx, title, description, completed)
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	fmt.Fprintf(c.app.out, "Added task #%d: %s\n", task.ID, task)
	return nil
}
