package domain

import (
	"testing"
	"time"

	"task-tracker/internal/repository/database"

	"github.com/stretchr/testify/assert"
)

var mapperTime = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

func TestTaskMapper_ToDatabase(t *testing.T) {
	mapper := NewTaskMapper()
	domainTask := Task{ID: 1, Title: "Test Task", Description: "d", Completed: true, CreatedAt: mapperTime, UpdatedAt: mapperTime}

	result := mapper.ToDatabase(domainTask)

	expected := database.Task{ID: 1, Title: "Test Task", Description: "d", Completed: true, CreatedAt: mapperTime, UpdatedAt: mapperTime}
	assert.Equal(t, expected, result)
}

func TestTaskMapper_FromDatabase(t *testing.T) {
	mapper := NewTaskMapper()
	dbTask := database.Task{ID: 1, Title: "Test Task", CreatedAt: mapperTime, UpdatedAt: mapperTime.Add(time.Hour)}

	result := mapper.FromDatabase(dbTask)

	expected := Task{ID: 1, Title: "Test Task", CreatedAt: mapperTime, UpdatedAt: mapperTime.Add(time.Hour)}
	assert.Equal(t, expected, result)
}

func TestTaskMapper_FromDatabaseList(t *testing.T) {
	mapper := NewTaskMapper()

	assert.Equal(t, []*Task{}, mapper.FromDatabaseList(nil))

	dbTasks := []*database.Task{
		{ID: 2, Title: "Task 2"},
		nil,
		{ID: 1, Title: "Task 1"},
	}
	result := mapper.FromDatabaseList(dbTasks)

	assert.Equal(t, []*Task{
		{ID: 2, Title: "Task 2"},
		{ID: 1, Title: "Task 1"},
	}, result)
}

func TestNewMapper(t *testing.T) {
	mapper := NewMapper()
	assert.NotNil(t, mapper.Task)
}
