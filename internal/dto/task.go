package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/tareas/task-lifecycle-api/internal/models"
)

// TaskDTO represents a task in API responses. Related users are reduced to
// their username.
type TaskDTO struct {
	ID             uuid.UUID         `json:"id"`
	Title          string            `json:"title"`
	Description    *string           `json:"description"`
	Status         models.TaskStatus `json:"status"`
	DueDate        *time.Time        `json:"dueDate"`
	AttachmentPath *string           `json:"attachmentPath"`
	CreatedByID    uuid.UUID         `json:"createdById"`
	CreatedBy      string            `json:"createdBy"`
	AssignedToID   uuid.UUID         `json:"assignedToId"`
	AssignedTo     string            `json:"assignedTo"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// CreateTaskRequest is the body of POST /api/tasks
type CreateTaskRequest struct {
	Title        string     `json:"title" binding:"required,max=255"`
	Description  *string    `json:"description"`
	DueDate      *time.Time `json:"dueDate"`
	AssignedToID uuid.UUID  `json:"assignedToId" binding:"required"`
}

// UpdateStatusRequest is the body of PATCH /api/tasks/:id/status
type UpdateStatusRequest struct {
	Status models.TaskStatus `json:"status" binding:"required,taskstatus"`
}

// TaskListQuery holds the list filters taken from the query string
type TaskListQuery struct {
	Status  string `form:"status" binding:"omitempty,taskstatus"`
	DueDate string `form:"dueDate" binding:"omitempty,datetime=2006-01-02"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		ID:             task.ID,
		Title:          task.Title,
		Description:    task.Description,
		Status:         task.Status,
		AttachmentPath: task.AttachmentPath,
		CreatedByID:    task.CreatedByID,
		CreatedBy:      task.CreatedBy.Username,
		AssignedToID:   task.AssignedToID,
		AssignedTo:     task.AssignedTo.Username,
		CreatedAt:      task.CreatedAt.UTC(),
		UpdatedAt:      task.UpdatedAt.UTC(),
	}
	if task.DueDate != nil {
		due := task.DueDate.UTC()
		dto.DueDate = &due
	}
	return dto
}

// ToTaskDTOs converts a slice of tasks
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	out := make([]TaskDTO, len(tasks))
	for i, t := range tasks {
		out[i] = ToTaskDTO(t)
	}
	return out
}
