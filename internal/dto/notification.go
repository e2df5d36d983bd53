package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/tareas/task-lifecycle-api/internal/models"
)

// NotificationDTO represents a notification in API responses
type NotificationDTO struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	TaskID    uuid.UUID `json:"taskId"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToNotificationDTO(n models.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        n.ID,
		Message:   n.Message,
		TaskID:    n.TaskID,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt.UTC(),
	}
}

func ToNotificationDTOs(notifications []models.Notification) []NotificationDTO {
	out := make([]NotificationDTO, len(notifications))
	for i, n := range notifications {
		out[i] = ToNotificationDTO(n)
	}
	return out
}
