package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"task-tracker/internal/errors"
)

// CompleteCommand handles task done and task reopen
type CompleteCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewCompleteCommand creates a new complete command handler
func NewCompleteCommand(app *App) *CompleteCommand {
	return &CompleteCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute sets the completed flag of the task identified by idArg
func (c *CompleteCommand) Execute(ctx context.Context, idArg string, completed bool) error {
	operation := "complete task"
	if !completed {
		operation = "reopen task"
	}

	id, err := parseTaskID(idArg)
	if err != nil {
		return c.errorHandler.Handle(operation, err)
	}

	task, err := c.app.tasks.SetCompleted(ctx, id, completed)
	if err != nil {
		return c.errorHandler.Handle(operation, err)
	}

	verb := "Completed"
	if !completed {
		verb = "Reopened"
	}
	fmt.Fprintf(c.app.out, "%s task #%d: %s\n", verb, task.ID, task)
	return nil
}

// parseTaskID parses a positive task id given on the command line
func parseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(strings.TrimSpace(arg), "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewInvalidInputError("id", arg, "must be a positive integer")
	}
	return id, nil
}
