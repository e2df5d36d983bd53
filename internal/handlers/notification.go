package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tareas/task-lifecycle-api/internal/dto"
	apierrors "github.com/tareas/task-lifecycle-api/internal/errors"
	"github.com/tareas/task-lifecycle-api/internal/middleware"
	"github.com/tareas/task-lifecycle-api/internal/services"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
}

func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// ListNotifications returns the caller's notifications, unread only when
// ?unread=true
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	actor, exists := middleware.GetActor(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var query struct {
		Unread bool `form:"unread"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindingError(c, err)
		return
	}

	notifications, err := h.notificationService.ListForUser(c.Request.Context(), actor, query.Unread)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToNotificationDTOs(notifications))
}

// MarkRead flags a notification as read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	actor, exists := middleware.GetActor(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	notification, err := h.notificationService.MarkRead(c.Request.Context(), id, actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToNotificationDTO(*notification))
}
