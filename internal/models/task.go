package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pendiente"
	TaskStatusInProgress TaskStatus = "en_progreso"
	TaskStatusCompleted  TaskStatus = "completada"
)

// TaskStatuses lists every status in lifecycle order.
var TaskStatuses = []TaskStatus{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted}

// Rank returns the position of s in the lifecycle, or -1 for unknown values.
func (s TaskStatus) Rank() int {
	for i, status := range TaskStatuses {
		if status == s {
			return i
		}
	}
	return -1
}

func (s TaskStatus) Valid() bool {
	return s.Rank() >= 0
}

type Task struct {
	ID             uuid.UUID  `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title          string     `gorm:"type:varchar(255);not null" json:"title"`
	Description    *string    `gorm:"type:text" json:"description"`
	Status         TaskStatus `gorm:"type:varchar(20);not null;default:'pendiente';index" json:"status"`
	DueDate        *time.Time `gorm:"index" json:"due_date"`
	AttachmentPath *string    `gorm:"type:varchar(255)" json:"attachment_path"`
	CreatedByID    uuid.UUID  `gorm:"type:varchar(36);not null;index" json:"created_by_id"`
	AssignedToID   uuid.UUID  `gorm:"type:varchar(36);not null;index" json:"assigned_to_id"`
	CreatedAt      time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// Relations. Both users cascade: removing a user removes the tasks they
	// created or were assigned.
	CreatedBy  User `gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE" json:"created_by,omitempty"`
	AssignedTo User `gorm:"foreignKey:AssignedToID;constraint:OnDelete:CASCADE" json:"assigned_to,omitempty"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Status == "" {
		t.Status = TaskStatusPending
	}
	return nil
}
