package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
)

// Output formats accepted by task list
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// ListCommand handles the task list command
type ListCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute prints every task, newest first
func (c *ListCommand) Execute(ctx context.Context, format string) error {
	if format != FormatTable && format != FormatJSON {
		return c.errorHandler.Handle("list tasks",
			errors.NewInvalidInputError("format", format, "must be table or json"))
	}

	tasks, err := c.app.tasks.ListTasks(ctx)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	if format == FormatJSON {
		return c.printJSON(tasks)
	}
	return c.printTable(tasks)
}

// printJSON writes the same envelope the HTTP API serves
func (c *ListCommand) printJSON(tasks []*domain.Task) error {
	enc := json.NewEncoder(c.app.out)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string][]domain.TaskRecord{"tasks": domain.Records(tasks)})
}

func (c *ListCommand) printTable(tasks []*domain.Task) error {
	if len(tasks) == 0 {
		fmt.Fprintln(c.app.out, "No tasks found")
		return nil
	}

	w := tabwriter.NewWriter(c.app.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDONE\tCREATED\tTITLE")
	for _, task := range tasks {
		done := " "
		if task.Completed {
			done = "x"
		}
		fmt.Fprintf(w, "%d\t[%s]\t%s\t%s\n", task.ID, done, domain.FormatTimestamp(task.CreatedAt), task)
	}
	return w.Flush()
}
