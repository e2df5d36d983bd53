package repository

import (
	"context"
	"log/slog"

	"github.com/tareas/task-lifecycle-api/internal/logger"
	"gorm.io/gorm"
)

// GormStore is a GORM implementation of Store
type GormStore struct {
	db            *gorm.DB
	users         UserRepository
	tasks         TaskRepository
	comments      CommentRepository
	notifications NotificationRepository
}

// NewStore creates a Store over db
func NewStore(db *gorm.DB) Store {
	return &GormStore{
		db:            db,
		users:         NewUserRepository(db),
		tasks:         NewTaskRepository(db),
		comments:      NewCommentRepository(db),
		notifications: NewNotificationRepository(db),
	}
}

func (s *GormStore) Users() UserRepository                 { return s.users }
func (s *GormStore) Tasks() TaskRepository                 { return s.tasks }
func (s *GormStore) Comments() CommentRepository           { return s.comments }
func (s *GormStore) Notifications() NotificationRepository { return s.notifications }

// Ping checks that the underlying connection pool can reach the database
func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// WithinTransaction runs fn inside a database transaction
func (s *GormStore) WithinTransaction(ctx context.Context, fn func(tx Store) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
	if err != nil {
		logger.FromContext(ctx).Debug("transaction rolled back", slog.String("error", err.Error()))
	}
	return err
}
