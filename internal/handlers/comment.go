package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tareas/task-lifecycle-api/internal/dto"
	apierrors "github.com/tareas/task-lifecycle-api/internal/errors"
	"github.com/tareas/task-lifecycle-api/internal/middleware"
	"github.com/tareas/task-lifecycle-api/internal/services"
)

type CommentHandler struct {
	commentService *services.CommentService
}

func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// CreateComment adds a comment to a task
func (h *CommentHandler) CreateComment(c *gin.Context) {
	actor, exists := middleware.GetActor(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), taskID, req.Content, actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommentDTO(*comment))
}

// ListComments returns the comment thread of a task
func (h *CommentHandler) ListComments(c *gin.Context) {
	actor, exists := middleware.GetActor(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	comments, err := h.commentService.ListComments(c.Request.Context(), taskID, actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentDTOs(comments))
}
