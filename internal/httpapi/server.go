package httpapi

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"task-tracker/internal/logging"
	"task-tracker/internal/services"

	"github.com/gin-gonic/gin"
)

// Paths served by the API
const (
	IndexPath  = "/"
	TasksPath  = "/api/tasks/"
	tasksAlias = "/api/tasks"
	AdminPath  = "/admin/"
	HealthPath = "/healthz"
)

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Options configures the listening http.Server
type Options struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Server serves the task API
type Server struct {
	tasks  services.TaskLister
	store  Pinger
	engine *gin.Engine
}

// NewServer builds the router. store may be nil, in which case /healthz always reports ok.
func NewServer(tasks services.TaskLister, store Pinger) *Server {
	srv := &Server{
		tasks:  tasks,
		store:  store,
		engine: gin.New(),
	}

	srv.engine.HandleMethodNotAllowed = true
	srv.engine.Use(requestID(), requestLogging(), gin.Recovery())
	srv.engine.NoMethod(handleMethodNotAllowed)
	srv.engine.NoRoute(handleNotFound)

	srv.engine.Any(IndexPath, srv.handleIndex)
	srv.engine.GET(TasksPath, srv.handleListTasks)
	// Registered explicitly so other verbs get 405 here as well.
	srv.engine.GET(tasksAlias, redirectToTasks)
	srv.engine.GET(HealthPath, srv.handleHealth)

	return srv
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

// ListenAndServe serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context, opts Options) error {
	server := &http.Server{
		Addr:         opts.Addr,
		Handler:      s,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Infof("listening on %s", opts.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logging.Infof("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), opts.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ModeForEnvironment maps an application environment onto a gin mode
func ModeForEnvironment(env string) string {
	switch env {
	case "production":
		return gin.ReleaseMode
	case "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
