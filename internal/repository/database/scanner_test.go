package database

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScanner implements the Scanner interface for testing
type TestScanner struct {
	data []interface{}
	err  error
}

func (ts *TestScanner) Scan(dest ...interface{}) error {
	if ts.err != nil {
		return ts.err
	}

	if len(dest) != len(ts.data) {
		return errors.New("mismatch in number of destinations")
	}

	for i, d := range dest {
		switch v := d.(type) {
		case *int64:
			*v = ts.data[i].(int64)
		case *string:
			*v = ts.data[i].(string)
		case *bool:
			*v = ts.data[i].(bool)
		case *interface{}:
			*v = ts.data[i]
		}
	}

	return nil
}

// TestRows replays a fixed set of rows through the Rows interface
type TestRows struct {
	rows    [][]interface{}
	current int
	err     error
}

func (tr *TestRows) Next() bool {
	if tr.current >= len(tr.rows) {
		return false
	}
	tr.current++
	return true
}

func (tr *TestRows) Scan(dest ...interface{}) error {
	return (&TestScanner{data: tr.rows[tr.current-1]}).Scan(dest...)
}

func (tr *TestRows) Err() error {
	return tr.err
}

func TestScanTask(t *testing.T) {
	created := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	updated := time.Date(2024, 1, 15, 11, 30, 0, 0, time.UTC)

	tests := []struct {
		name        string
		scanner     *TestScanner
		expected    *Task
		expectError string
	}{
		{
			name: "sqlite text timestamps",
			scanner: &TestScanner{data: []interface{}{
				int64(1), "Write docs", "", false,
				"2024-01-15T10:00:00.000000000Z", "2024-01-15T11:30:00.000000000Z",
			}},
			expected: &Task{ID: 1, Title: "Write docs", CreatedAt: created, UpdatedAt: updated},
		},
		{
			name: "postgres native timestamps",
			scanner: &TestScanner{data: []interface{}{
				int64(2), "Ship release", "v1.2", true, created, updated,
			}},
			expected: &Task{ID: 2, Title: "Ship release", Description: "v1.2", Completed: true, CreatedAt: created, UpdatedAt: updated},
		},
		{
			name: "byte slice timestamps",
			scanner: &TestScanner{data: []interface{}{
				int64(3), "Review", "", false,
				[]byte("2024-01-15T10:00:00Z"), []byte("2024-01-15T11:30:00Z"),
			}},
			expected: &Task{ID: 3, Title: "Review", CreatedAt: created, UpdatedAt: updated},
		},
		{
			name:        "scan error",
			scanner:     &TestScanner{err: errors.New("scan failed")},
			expectError: "scan failed",
		},
		{
			name: "unparseable created_at",
			scanner: &TestScanner{data: []interface{}{
				int64(4), "Broken", "", false, "yesterday", "2024-01-15T11:30:00Z",
			}},
			expectError: "created_at",
		},
		{
			name: "null updated_at",
			scanner: &TestScanner{data: []interface{}{
				int64(5), "Broken", "", false, "2024-01-15T10:00:00Z", nil,
			}},
			expectError: "updated_at",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ScanTask(tt.scanner)

			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected.ID, result.ID)
			assert.Equal(t, tt.expected.Title, result.Title)
			assert.Equal(t, tt.expected.Description, result.Description)
			assert.Equal(t, tt.expected.Completed, result.Completed)
			assert.True(t, tt.expected.CreatedAt.Equal(result.CreatedAt))
			assert.True(t, tt.expected.UpdatedAt.Equal(result.UpdatedAt))
		})
	}
}

func TestScanTasks(t *testing.T) {
	t.Run("empty result is non-nil", func(t *testing.T) {
		tasks, err := ScanTasks(&TestRows{})
		require.NoError(t, err)
		assert.NotNil(t, tasks)
		assert.Empty(t, tasks)
	})

	t.Run("preserves row order", func(t *testing.T) {
		rows := &TestRows{rows: [][]interface{}{
			{int64(2), "Task 2", "", true, "2024-01-02T00:00:00Z", "2024-01-02T00:00:00Z"},
			{int64(1), "Task 1", "", false, "2024-01-01T00:00:00Z", "2024-01-01T00:00:00Z"},
		}}

		tasks, err := ScanTasks(rows)
		require.NoError(t, err)
		require.Len(t, tasks, 2)
		assert.Equal(t, "Task 2", tasks[0].Title)
		assert.Equal(t, "Task 1", tasks[1].Title)
	})

	t.Run("iteration error", func(t *testing.T) {
		_, err := ScanTasks(&TestRows{err: errors.New("connection reset")})
		assert.EqualError(t, err, "connection reset")
	})
}
