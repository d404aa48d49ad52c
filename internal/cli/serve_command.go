package cli

import (
	"context"

	"task-tracker/internal/httpapi"
	"task-tracker/internal/logging"

	"github.com/gin-gonic/gin"
)

// ServeCommand runs the HTTP API
type ServeCommand struct {
	app *App
}

// NewServeCommand creates a new serve command handler
func NewServeCommand(app *App) *ServeCommand {
	return &ServeCommand{app: app}
}

// Execute serves on the configured address until ctx is cancelled.
func (c *ServeCommand) Execute(ctx context.Context) error {
	cfg := c.app.config

	gin.SetMode(httpapi.ModeForEnvironment(cfg.GetEnvironment()))
	logging.Debugf("serving env=%s driver=%s addr=%s", cfg.GetEnvironment(), c.app.repo.Dialect(), cfg.Server.Addr)

	srv := httpapi.NewServer(c.app.tasks, c.app.repo)
	return srv.ListenAndServe(ctx, httpapi.Options{
		Addr:            cfg.Server.Addr,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
}
