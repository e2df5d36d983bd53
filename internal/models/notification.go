package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification informs a task's creator that its status changed.
type Notification struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primaryKey" json:"id"`
	Message   string    `gorm:"type:varchar(255);not null" json:"message"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	TaskID    uuid.UUID `gorm:"type:varchar(36);not null;index" json:"task_id"`
	IsRead    bool      `gorm:"not null" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Task Task `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"-"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
