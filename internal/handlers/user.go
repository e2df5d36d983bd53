package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tareas/task-lifecycle-api/internal/dto"
	apierrors "github.com/tareas/task-lifecycle-api/internal/errors"
	"github.com/tareas/task-lifecycle-api/internal/middleware"
	"github.com/tareas/task-lifecycle-api/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsernames returns the users the caller can assign tasks to.
func (h *UserHandler) ListUsernames(c *gin.Context) {
	actor, exists := middleware.GetActor(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	users, err := h.userService.ListAssignable(c.Request.Context(), actor.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserSummaryDTOs(users))
}
