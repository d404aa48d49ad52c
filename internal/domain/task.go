package domain

import (
	"strings"
	"time"
)

// TimestampLayout is the ISO-8601 form used whenever a task timestamp leaves the process.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// Task represents a to-do item in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID          int64
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTask creates a new, not yet completed Task with the given title.
func NewTask(title string) Task {
	return Task{
		Title: title,
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return strings.TrimSpace(t.Title) != ""
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}

// TaskRecord is the flat projection of a Task sent to API and CLI clients.
type TaskRecord struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// Record projects the task into its transport form.
func (t Task) Record() TaskRecord {
	return TaskRecord{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   FormatTimestamp(t.CreatedAt),
		UpdatedAt:   FormatTimestamp(t.UpdatedAt),
	}
}

// Records projects tasks in order. The result is never nil.
func Records(tasks []*Task) []TaskRecord {
	records := make([]TaskRecord, 0, len(tasks))
	for _, task := range tasks {
		records = append(records, task.Record())
	}
	return records
}

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
