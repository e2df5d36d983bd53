package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/tareas/task-lifecycle-api/internal/constants"
	"github.com/tareas/task-lifecycle-api/internal/logger"
	"github.com/tareas/task-lifecycle-api/internal/models"
	"github.com/tareas/task-lifecycle-api/internal/policy"
	"github.com/tareas/task-lifecycle-api/internal/repository"
	"gorm.io/gorm"
)

// CommentService handles the comment thread of a task.
type CommentService struct {
	store repository.Store
}

// NewCommentService creates a new CommentService
func NewCommentService(store repository.Store) *CommentService {
	return &CommentService{store: store}
}

// CreateComment adds a comment by author to a task. Only the assignee may
// comment. The task and permission are checked before the content.
func (s *CommentService) CreateComment(ctx context.Context, taskID uuid.UUID, content string, author policy.Actor) (*models.Comment, error) {
	task, err := s.loadTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if !policy.CanComment(author, task) {
		return nil, ErrCannotComment
	}

	content = strings.TrimSpace(content)
	if content == "" || utf8.RuneCountInString(content) > constants.MaxCommentLength {
		return nil, ErrInvalidCommentContent
	}

	comment := &models.Comment{
		Content: content,
		TaskID:  task.ID,
		UserID:  author.ID,
	}
	if err := s.store.Comments().Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	logger.FromContext(ctx).Info("comment created",
		slog.String("comment_id", comment.ID.String()),
		slog.String("task_id", task.ID.String()),
	)

	created, err := s.store.Comments().FindByID(ctx, comment.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload comment: %w", err)
	}
	return created, nil
}

// ListComments returns a task's comments oldest first.
func (s *CommentService) ListComments(ctx context.Context, taskID uuid.UUID, actor policy.Actor) ([]models.Comment, error) {
	task, err := s.loadTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if !policy.CanViewComments(actor, task) {
		return nil, ErrCannotViewComments
	}

	comments, err := s.store.Comments().ListByTask(ctx, task.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

func (s *CommentService) loadTask(ctx context.Context, taskID uuid.UUID) (*models.Task, error) {
	task, err := s.store.Tasks().FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}
