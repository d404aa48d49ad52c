package domain

import (
	"task-tracker/internal/repository/database"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(domainTask Task) database.Task {
	return database.Task{
		ID:          domainTask.ID,
		Title:       domainTask.Title,
		Description: domainTask.Description,
		Completed:   domainTask.Completed,
		CreatedAt:   domainTask.CreatedAt,
		UpdatedAt:   domainTask.UpdatedAt,
	}
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask database.Task) Task {
	return Task{
		ID:          dbTask.ID,
		Title:       dbTask.Title,
		Description: dbTask.Description,
		Completed:   dbTask.Completed,
		CreatedAt:   dbTask.CreatedAt,
		UpdatedAt:   dbTask.UpdatedAt,
	}
}

// FromDatabaseList converts repository results to domain Tasks, keeping order.
// A nil or empty input yields an empty, non-nil slice.
func (m *TaskMapper) FromDatabaseList(dbTasks []*database.Task) []*Task {
	domainTasks := make([]*Task, 0, len(dbTasks))
	for _, dbTask := range dbTasks {
		if dbTask == nil {
			continue
		}
		task := m.FromDatabase(*dbTask)
		domainTasks = append(domainTasks, &task)
	}
	return domainTasks
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task *TaskMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task: NewTaskMapper(),
	}
}
