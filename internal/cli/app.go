package cli

import (
	"io"
	"os"

	"task-tracker/internal/config"
	"task-tracker/internal/repository/database"
	"task-tracker/internal/services"
	"task-tracker/internal/validation"
)

// RepositoryFactory opens the store for a loaded configuration
type RepositoryFactory func(cfg *config.Config) (*database.SQLRepository, error)

// App holds the dependencies shared by every command handler
type App struct {
	config *config.Config
	repo   *database.SQLRepository
	tasks  services.TaskService
	out    io.Writer
}

// NewApp wires the task service over repo using the configured validation limits
func NewApp(cfg *config.Config, repo *database.SQLRepository, out io.Writer) *App {
	if out == nil {
		out = os.Stdout
	}
	validator := validation.NewTaskValidatorWithLimits(cfg.Validation.TitleMaxLength, cfg.Validation.DescriptionMaxLength)
	return &App{
		config: cfg,
		repo:   repo,
		tasks:  services.NewTaskServiceWithValidator(repo, validator),
		out:    out,
	}
}

// Close releases the underlying store
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}
