package handlers

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"
	apierrors "github.com/tareas/task-lifecycle-api/internal/errors"
	"github.com/tareas/task-lifecycle-api/internal/logger"
	"github.com/tareas/task-lifecycle-api/internal/services"
)

// respondServiceError maps a service error onto the API error envelope.
// Unrecognised errors are logged and reported as a generic 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.InvalidCredentials(c)
	case errors.Is(err, services.ErrNotFound):
		apierrors.NotFound(c, messageOf(err, services.ErrNotFound))
	case errors.Is(err, services.ErrForbidden):
		apierrors.Forbidden(c, messageOf(err, services.ErrForbidden))
	case errors.Is(err, services.ErrUnauthorized):
		apierrors.Unauthorized(c, messageOf(err, services.ErrUnauthorized))
	case errors.Is(err, services.ErrConflict):
		apierrors.Conflict(c, messageOf(err, services.ErrConflict))
	case errors.Is(err, services.ErrBadRequest):
		apierrors.BadRequest(c, messageOf(err, services.ErrBadRequest))
	default:
		logger.FromContext(c.Request.Context()).Error("unhandled service error",
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()),
		)
		_ = c.Error(err)
		apierrors.InternalError(c, "")
	}
}

// messageOf strips the kind prefix from a wrapped service error.
func messageOf(err, kind error) string {
	msg := strings.TrimPrefix(err.Error(), kind.Error()+": ")
	if msg == "" {
		return ""
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
