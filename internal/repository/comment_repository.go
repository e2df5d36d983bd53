package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/tareas/task-lifecycle-api/internal/models"
	"gorm.io/gorm"
)

// GormCommentRepository is a GORM implementation of CommentRepository
type GormCommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &GormCommentRepository{db: db}
}

// Create creates a new comment
func (r *GormCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Omit("Task", "User").Create(comment).Error
}

// FindByID finds a comment by ID with its author
func (r *GormCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByTask lists comments in thread order
func (r *GormCommentRepository) ListByTask(ctx context.Context, taskID uuid.UUID) ([]models.Comment, error) {
	comments := []models.Comment{}
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("task_id = ?", taskID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
