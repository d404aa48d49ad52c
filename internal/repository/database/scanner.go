package database

import (
	"fmt"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTask scans a single task from a database row.
// Column order: id, title, description, completed, created_at, updated_at.
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	var createdAt, updatedAt interface{}

	err := scanner.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Completed,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if task.CreatedAt, err = ParseTimeValue(createdAt); err != nil {
		return nil, fmt.Errorf("created_at: %w", err)
	}
	if task.UpdatedAt, err = ParseTimeValue(updatedAt); err != nil {
		return nil, fmt.Errorf("updated_at: %w", err)
	}

	return task, nil
}

// ScanTasks scans multiple tasks from database rows. An empty result is an empty, non-nil slice.
func ScanTasks(rows Rows) ([]*Task, error) {
	tasks := make([]*Task, 0)
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
