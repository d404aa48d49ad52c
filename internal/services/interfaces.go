package services

import (
	"context"

	"task-tracker/internal/domain"
)

// TaskLister is the read-only slice of TaskService needed by the HTTP API
type TaskLister interface {
	ListTasks(ctx context.Context) ([]*domain.Task, error)
}

// TaskService handles task lifecycle operations
type TaskService interface {
	TaskLister

	// Task CRUD operations
	CreateTask(ctx context.Context, title, description string, completed bool) (*domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error

	// Task workflow operations
	SetCompleted(ctx context.Context, id int64, completed bool) (*domain.Task, error)
}
