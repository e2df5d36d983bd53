package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tareas/task-lifecycle-api/internal/constants"
	"github.com/tareas/task-lifecycle-api/internal/logger"
)

const requestIDHeader = "X-Request-ID"

// RequestLogger tags each request with an id, stores a request-scoped logger
// in the request context and logs the outcome once the handlers return.
func RequestLogger(base *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(constants.ContextKeyRequestID, requestID)
		c.Header(requestIDHeader, requestID)

		log := base.With(slog.String("request_id", requestID))
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), log))

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		reqLog := logger.FromContext(c.Request.Context())
		switch {
		case status >= 500:
			reqLog.Error("request completed", attrs...)
		case status >= 400:
			reqLog.Warn("request completed", attrs...)
		default:
			reqLog.Info("request completed", attrs...)
		}
	}
}
