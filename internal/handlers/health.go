package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	apierrors "github.com/tareas/task-lifecycle-api/internal/errors"
	"github.com/tareas/task-lifecycle-api/internal/logger"
	"github.com/tareas/task-lifecycle-api/internal/repository"
)

const healthPingTimeout = 2 * time.Second

type HealthHandler struct {
	store repository.Store
}

func NewHealthHandler(store repository.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// Health answers 200 while the database is reachable and 503 otherwise.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		logger.FromContext(ctx).Error("database ping failed", slog.String("error", err.Error()))
		apierrors.ServiceUnavailable(c, "Database unavailable")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Task API is running",
	})
}
