package httpapi

import (
	"time"

	"task-tracker/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-Id"
	requestIDKey    = "request_id"
)

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(requestIDKey, reqID)
		c.Header(requestIDHeader, reqID)
		c.Next()
	}
}

func requestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logging.Infof("rid=%s method=%s path=%s status=%d dur=%s",
			c.GetString(requestIDKey), c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
