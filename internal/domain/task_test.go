package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	task := NewTask("Test Task")

	assert.Equal(t, "Test Task", task.Title)
	assert.Equal(t, "", task.Description)
	assert.False(t, task.Completed)
	assert.Zero(t, task.ID)
}

func TestTask_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		task     Task
		expected bool
	}{
		{"valid task with title", Task{ID: 1, Title: "Valid Task"}, true},
		{"invalid task with empty title", Task{ID: 1, Title: ""}, false},
		{"invalid task with whitespace title", Task{ID: 1, Title: "   "}, false},
		{"valid task with zero ID", Task{Title: "Valid Task"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.task.IsValid())
		})
	}
}

func TestTask_String(t *testing.T) {
	tests := []struct {
		name     string
		task     Task
		expected string
	}{
		{"returns title", Task{ID: 1, Title: "Test Task", Description: "ignored"}, "Test Task"},
		{"returns empty string for empty title", Task{ID: 1}, ""},
		{"keeps surrounding whitespace", Task{Title: "  padded  "}, "  padded  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.task.String())
		})
	}
}

func TestTask_Record(t *testing.T) {
	task := Task{
		ID:          7,
		Title:       "Task 2",
		Description: "Description 2",
		Completed:   true,
		CreatedAt:   time.Date(2024, 3, 10, 14, 5, 6, 789000000, time.UTC),
		UpdatedAt:   time.Date(2024, 3, 10, 16, 5, 6, 0, time.FixedZone("EET", 2*60*60)),
	}

	record := task.Record()

	assert.Equal(t, TaskRecord{
		ID:          7,
		Title:       "Task 2",
		Description: "Description 2",
		Completed:   true,
		CreatedAt:   "2024-03-10T14:05:06.789000Z",
		UpdatedAt:   "2024-03-10T14:05:06.000000Z",
	}, record)

	raw, err := json.Marshal(record)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.ElementsMatch(t,
		[]string{"id", "title", "description", "completed", "created_at", "updated_at"},
		keys(fields))
}

func TestRecords(t *testing.T) {
	assert.Equal(t, []TaskRecord{}, Records(nil))

	tasks := []*Task{{ID: 2, Title: "newer"}, {ID: 1, Title: "older"}}
	records := Records(tasks)
	require.Len(t, records, 2)
	assert.Equal(t, "newer", records[0].Title)
	assert.Equal(t, "older", records[1].Title)
}

func TestFormatTimestamp_ParsesAsISO8601(t *testing.T) {
	ts := time.Date(2025, 12, 31, 23, 59, 59, 999999000, time.UTC)

	parsed, err := time.Parse(time.RFC3339Nano, FormatTimestamp(ts))
	require.NoError(t, err)
	assert.True(t, ts.Equal(parsed))
}

func keys(m map[string]interface{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
