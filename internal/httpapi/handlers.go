package httpapi

import (
	"net/http"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/logging"

	"github.com/gin-gonic/gin"
)

const welcomeMessage = "Welcome to the Task API"

type indexResponse struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

type taskListResponse struct {
	Tasks []domain.TaskRecord `json:"tasks"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (s *Server) handleIndex(c *gin.Context) {
	c.JSON(http.StatusOK, indexResponse{
		Message: welcomeMessage,
		Endpoints: map[string]string{
			"tasks": TasksPath,
			"admin": AdminPath,
		},
	})
}

func (s *Server) handleListTasks(c *gin.Context) {
	tasks, err := s.tasks.ListTasks(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, taskListResponse{Tasks: domain.Records(tasks)})
}

func (s *Server) handleHealth(c *gin.Context) {
	if s.store != nil {
		if err := s.store.Ping(c.Request.Context()); err != nil {
			logging.Errorf("health check failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func redirectToTasks(c *gin.Context) {
	target := TasksPath
	if c.Request.URL.RawQuery != "" {
		target += "?" + c.Request.URL.RawQuery
	}
	c.Redirect(http.StatusMovedPermanently, target)
}

func handleMethodNotAllowed(c *gin.Context) {
	if c.Writer.Header().Get("Allow") == "" {
		c.Header("Allow", http.MethodGet)
	}
	writeError(c, errors.NewMethodNotAllowedError(c.Request.Method, c.Request.URL.Path))
}

func handleNotFound(c *gin.Context) {
	writeError(c, errors.NewNotFoundError("path", c.Request.URL.Path))
}

// writeError renders err as {"error", "code"}. Errors without a type are
// reported as internal so driver messages never reach the client.
func writeError(c *gin.Context, err error) {
	if errors.ShouldLogError(err) {
		logging.Errorf("rid=%s %s %s: %v %s", c.GetString(requestIDKey), c.Request.Method, c.Request.URL.Path, err, errors.LogFields(err))
	}

	if !errors.IsAppError(err) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{
			Error: "An unexpected error occurred. Please try again.",
			Code:  "INTERNAL_ERROR",
		})
		return
	}

	c.AbortWithStatusJSON(errors.HTTPStatus(err), errorResponse{
		Error: errors.GetUserMessage(err),
		Code:  errors.GetErrorCode(err),
	})
}
