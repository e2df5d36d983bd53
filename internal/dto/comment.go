package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/tareas/task-lifecycle-api/internal/models"
)

// CommentDTO represents a comment with its author's username
type CommentDTO struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	TaskID    uuid.UUID `json:"taskId"`
	UserID    uuid.UUID `json:"userId"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateCommentRequest is the body of POST /api/tasks/:id/comments
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,max=1000"`
}

func ToCommentDTO(comment models.Comment) CommentDTO {
	return CommentDTO{
		ID:        comment.ID,
		Content:   comment.Content,
		TaskID:    comment.TaskID,
		UserID:    comment.UserID,
		Username:  comment.User.Username,
		CreatedAt: comment.CreatedAt.UTC(),
		UpdatedAt: comment.UpdatedAt.UTC(),
	}
}

func ToCommentDTOs(comments []models.Comment) []CommentDTO {
	out := make([]CommentDTO, len(comments))
	for i, c := range comments {
		out[i] = ToCommentDTO(c)
	}
	return out
}
