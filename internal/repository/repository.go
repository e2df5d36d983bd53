package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tareas/task-lifecycle-api/internal/models"
)

// Store groups the repositories that share one database handle. A Store
// obtained inside WithinTransaction is bound to that transaction.
type Store interface {
	Users() UserRepository
	Tasks() TaskRepository
	Comments() CommentRepository
	Notifications() NotificationRepository

	// WithinTransaction runs fn as one unit of work. Returning an error (or
	// panicking) rolls back every write made through the transactional Store.
	WithinTransaction(ctx context.Context, fn func(tx Store) error) error

	// Ping checks that the database is reachable
	Ping(ctx context.Context) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(ctx context.Context, task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(ctx context.Context, id uuid.UUID, preload ...string) (*models.Task, error)

	// List retrieves tasks matching the filter, creator and assignee preloaded
	List(ctx context.Context, filter TaskFilter) ([]models.Task, error)

	// UpdateStatus writes a new status and bumps updated_at
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.TaskStatus) error

	// Delete removes a task together with its comments and notifications
	Delete(ctx context.Context, id uuid.UUID) error
}

// TaskOrder selects the ordering applied by TaskRepository.List.
type TaskOrder int

const (
	// OrderNewestFirst orders by created_at descending.
	OrderNewestFirst TaskOrder = iota
	// OrderSoonestDue orders by due_date ascending (undated last), then created_at descending.
	OrderSoonestDue
)

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	Status       *models.TaskStatus
	CreatedByID  *uuid.UUID
	AssignedToID *uuid.UUID
	DueDateFrom  *time.Time
	DueDateTo    *time.Time
	Order        TaskOrder
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user. Unique violations are reported as ErrDuplicate.
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// ExistsByUsernameOrEmail reports whether either value is already taken
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)

	// ListByRole lists users with the given role except excludeID, ordered by username
	ListByRole(ctx context.Context, role models.Role, excludeID uuid.UUID) ([]models.User, error)
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	// Create creates a new comment
	Create(ctx context.Context, comment *models.Comment) error

	// FindByID finds a comment by ID with its author preloaded
	FindByID(ctx context.Context, id uuid.UUID) (*models.Comment, error)

	// ListByTask lists the comments of a task oldest first, authors preloaded
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]models.Comment, error)
}

// NotificationRepository defines the interface for notification data access
type NotificationRepository interface {
	// Create creates a new notification
	Create(ctx context.Context, notification *models.Notification) error

	// FindByID finds a notification by ID
	FindByID(ctx context.Context, id uuid.UUID) (*models.Notification, error)

	// ListByUser lists a user's notifications newest first
	ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]models.Notification, error)

	// CountByTask counts the notifications attached to a task
	CountByTask(ctx context.Context, taskID uuid.UUID) (int64, error)

	// MarkRead flags a notification as read
	MarkRead(ctx context.Context, id uuid.UUID) error
}
