package services

import (
	"context"
	"strings"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
	"task-tracker/internal/repository/database"
	"task-tracker/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          database.Repository
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
}

// NewTaskService creates a new TaskService using the default validation limits
func NewTaskService(repo database.Repository) TaskService {
	return NewTaskServiceWithValidator(repo, validation.NewTaskValidator())
}

// NewTaskServiceWithValidator creates a TaskService with a custom validator
func NewTaskServiceWithValidator(repo database.Repository, validator *validation.TaskValidator) TaskService {
	if validator == nil {
		validator = validation.NewTaskValidator()
	}
	return &taskServiceImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: validator,
	}
}

func (t *taskServiceImpl) validateID(id int64) error {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return errors.NewValidationError("invalid task ID", err).With("id", id)
	}
	return nil
}

// CreateTask validates and inserts a new task
func (t *taskServiceImpl) CreateTask(ctx context.Context, title, description string, completed bool) (*domain.Task, error) {
	if err := t.taskValidator.ValidateTaskForCreation(title, description); err != nil {
		return nil, errors.NewValidationError(userMessage(err), err)
	}

	dbTask := &database.Task{
		Title:       strings.TrimSpace(title),
		Description: description,
		Completed:   completed,
	}
	if err := t.repo.CreateTask(ctx, dbTask); err != nil {
		return nil, err
	}
	logging.Debugf("created task id=%d", dbTask.ID)

	domainTask := t.mapper.Task.FromDatabase(*dbTask)
	return &domainTask, nil
}

// GetTask retrieves a task by its ID
func (t *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if err := t.validateID(id); err != nil {
		return nil, err
	}

	dbTask, err := t.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	domainTask := t.mapper.Task.FromDatabase(*dbTask)
	return &domainTask, nil
}

// ListTasks returns every task, newest first
func (t *taskServiceImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	dbTasks, err := t.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return t.mapper.Task.FromDatabaseList(dbTasks), nil
}

// SetCompleted marks a task done or not done and refreshes its updated_at
func (t *taskServiceImpl) SetCompleted(ctx context.Context, id int64, completed bool) (*domain.Task, error) {
	if err := t.validateID(id); err != nil {
		return nil, err
	}

	dbTask, err := t.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	dbTask.Completed = completed
	if err := t.repo.UpdateTask(ctx, dbTask); err != nil {
		return nil, err
	}
	logging.Debugf("task id=%d completed=%t", id, completed)

	domainTask := t.mapper.Task.FromDatabase(*dbTask)
	return &domainTask, nil
}

// DeleteTask removes a task
func (t *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	if err := t.validateID(id); err != nil {
		return err
	}
	return t.repo.DeleteTask(ctx, id)
}

func userMessage(err error) string {
	if ve, ok := err.(*validation.ValidationError); ok {
		return ve.GetUserFriendlyMessage()
	}
	return err.Error()
}
