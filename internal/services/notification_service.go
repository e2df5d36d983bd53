package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tareas/task-lifecycle-api/internal/models"
	"github.com/tareas/task-lifecycle-api/internal/policy"
	"github.com/tareas/task-lifecycle-api/internal/repository"
	"gorm.io/gorm"
)

// NotificationService exposes the stored notifications to their addressee.
type NotificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notificationRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// ListForUser returns the actor's notifications, newest first.
func (s *NotificationService) ListForUser(ctx context.Context, actor policy.Actor, unreadOnly bool) ([]models.Notification, error) {
	notifications, err := s.notificationRepo.ListByUser(ctx, actor.ID, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead flags one of the actor's notifications as read. Marking an
// already read notification succeeds.
func (s *NotificationService) MarkRead(ctx context.Context, id uuid.UUID, actor policy.Actor) (*models.Notification, error) {
	notification, err := s.notificationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to find notification: %w", err)
	}

	if !policy.CanReadNotification(actor, notification) {
		return nil, ErrCannotReadNotification
	}

	if notification.IsRead {
		return notification, nil
	}

	if err := s.notificationRepo.MarkRead(ctx, notification.ID); err != nil {
		return nil, fmt.Errorf("failed to mark notification as read: %w", err)
	}

	notification.IsRead = true
	return notification, nil
}
