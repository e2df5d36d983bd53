package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/tareas/task-lifecycle-api/internal/constants"
	"github.com/tareas/task-lifecycle-api/internal/logger"
	"github.com/tareas/task-lifecycle-api/internal/models"
	"github.com/tareas/task-lifecycle-api/internal/policy"
	"github.com/tareas/task-lifecycle-api/internal/repository"
	"github.com/tareas/task-lifecycle-api/internal/utils"
	"gorm.io/gorm"
)

// TaskService handles the task lifecycle: creation, listing, status
// transitions and deletion.
type TaskService struct {
	store repository.Store
}

// NewTaskService creates a new TaskService
func NewTaskService(store repository.Store) *TaskService {
	return &TaskService{store: store}
}

// TaskFilter holds the optional list filters. DueDate matches on the UTC
// calendar day only.
type TaskFilter struct {
	Status  *models.TaskStatus
	DueDate *time.Time
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title        string
	Description  *string
	DueDate      *time.Time
	AssignedToID uuid.UUID
}

// CreateTask creates a pending task owned by actor and assigned to
// input.AssignedToID.
func (s *TaskService) CreateTask(ctx context.Context, input CreateTaskInput, actor policy.Actor) (*models.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > constants.MaxTitleLength {
		return nil, ErrTitleTooLong
	}

	if _, err := s.store.Users().FindByID(ctx, input.AssignedToID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssigneeNotFound
		}
		return nil, fmt.Errorf("failed to find assignee: %w", err)
	}

	task := &models.Task{
		Title:        title,
		Description:  input.Description,
		Status:       models.TaskStatusPending,
		CreatedByID:  actor.ID,
		AssignedToID: input.AssignedToID,
	}
	if input.DueDate != nil {
		due := input.DueDate.UTC()
		task.DueDate = &due
	}

	if err := s.store.Tasks().Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	logger.FromContext(ctx).Info("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("created_by", actor.ID.String()),
		slog.String("assigned_to", task.AssignedToID.String()),
	)

	created, err := s.store.Tasks().FindByID(ctx, task.ID, "CreatedBy", "AssignedTo")
	if err != nil {
		return nil, fmt.Errorf("failed to reload task: %w", err)
	}
	return created, nil
}

// ListCreatedBy returns the tasks created by creatorID, newest first.
func (s *TaskService) ListCreatedBy(ctx context.Context, creatorID uuid.UUID, filter TaskFilter) ([]models.Task, error) {
	f, err := buildRepositoryFilter(filter, repository.OrderNewestFirst)
	if err != nil {
		return nil, err
	}
	f.CreatedByID = &creatorID

	tasks, err := s.store.Tasks().List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// ListAssignedTo returns the tasks assigned to assigneeID, soonest due first.
// Tasks without a due date come last; ties are broken by newest creation.
func (s *TaskService) ListAssignedTo(ctx context.Context, assigneeID uuid.UUID, filter TaskFilter) ([]models.Task, error) {
	f, err := buildRepositoryFilter(filter, repository.OrderSoonestDue)
	if err != nil {
		return nil, err
	}
	f.AssignedToID = &assigneeID

	tasks, err := s.store.Tasks().List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// ListAll returns every task, newest first. Administrators only.
func (s *TaskService) ListAll(ctx context.Context, actor policy.Actor, filter TaskFilter) ([]models.Task, error) {
	if !policy.CanListAllTasks(actor) {
		return nil, ErrAdminOnly
	}

	f, err := buildRepositoryFilter(filter, repository.OrderNewestFirst)
	if err != nil {
		return nil, err
	}

	tasks, err := s.store.Tasks().List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetTask returns a task with creator and assignee loaded.
func (s *TaskService) GetTask(ctx context.Context, taskID uuid.UUID, actor policy.Actor) (*models.Task, error) {
	task, err := s.findTask(ctx, s.store, taskID, "CreatedBy", "AssignedTo")
	if err != nil {
		return nil, err
	}

	if !policy.CanViewTask(actor, task) {
		return nil, ErrCannotViewTask
	}
	return task, nil
}

// UpdateStatus moves a task to status and notifies its creator. The status
// write and the notification insert commit together. Setting the current
// status again returns the task unchanged and notifies nobody.
func (s *TaskService) UpdateStatus(ctx context.Context, taskID uuid.UUID, status models.TaskStatus, actor policy.Actor) (*models.Task, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	var updated *models.Task
	err := s.store.WithinTransaction(ctx, func(tx repository.Store) error {
		task, err := s.findTask(ctx, tx, taskID)
		if err != nil {
			return err
		}

		if !policy.CanChangeStatus(actor, task) {
			return ErrCannotChangeStatus
		}

		if task.Status == status {
			updated = task
			return nil
		}

		if err := tx.Tasks().UpdateStatus(ctx, task.ID, status); err != nil {
			return fmt.Errorf("failed to update task status: %w", err)
		}

		notification := &models.Notification{
			Message: StatusChangeMessage(actor.Username, task.Title, status),
			UserID:  task.CreatedByID,
			TaskID:  task.ID,
		}
		if err := tx.Notifications().Create(ctx, notification); err != nil {
			return fmt.Errorf("failed to create notification: %w", err)
		}

		logger.FromContext(ctx).Info("task status changed",
			slog.String("task_id", task.ID.String()),
			slog.String("from", string(task.Status)),
			slog.String("to", string(status)),
			slog.String("notified_user", task.CreatedByID.String()),
		)

		task.Status = status
		updated = task
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.findTask(ctx, s.store, updated.ID, "CreatedBy", "AssignedTo")
}

// DeleteTask removes a task together with its comments and notifications.
func (s *TaskService) DeleteTask(ctx context.Context, taskID uuid.UUID, actor policy.Actor) error {
	task, err := s.findTask(ctx, s.store, taskID)
	if err != nil {
		return err
	}

	if !policy.CanDeleteTask(actor, task) {
		return ErrCannotDeleteTask
	}

	if err := s.store.Tasks().Delete(ctx, task.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}

	logger.FromContext(ctx).Info("task deleted",
		slog.String("task_id", task.ID.String()),
		slog.String("deleted_by", actor.ID.String()),
	)
	return nil
}

// StatusChangeMessage renders the notification text sent to a task's creator.
func StatusChangeMessage(username, title string, status models.TaskStatus) string {
	msg := fmt.Sprintf("%s cambió el estado de la tarea \"%s\" a %s", username, title, status)
	return utils.TruncateRunes(msg, constants.MaxNotificationChars)
}

func (s *TaskService) findTask(ctx context.Context, store repository.Store, taskID uuid.UUID, preload ...string) (*models.Task, error) {
	task, err := store.Tasks().FindByID(ctx, taskID, preload...)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

func buildRepositoryFilter(filter TaskFilter, order repository.TaskOrder) (repository.TaskFilter, error) {
	f := repository.TaskFilter{Order: order}

	if filter.Status != nil {
		if !filter.Status.Valid() {
			return f, ErrInvalidStatus
		}
		f.Status = filter.Status
	}
	if filter.DueDate != nil {
		from, to := utils.DayBounds(*filter.DueDate)
		f.DueDateFrom = &from
		f.DueDateTo = &to
	}

	return f, nil
}
