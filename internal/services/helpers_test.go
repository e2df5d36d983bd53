package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/tareas/task-lifecycle-api/internal/database"
	"github.com/tareas/task-lifecycle-api/internal/models"
	"github.com/tareas/task-lifecycle-api/internal/policy"
	"github.com/tareas/task-lifecycle-api/internal/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testTokenSecret = "test-secret-test-secret-test-secret"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.OpenSQLite(":memory:", database.NewGormConfig(logger.Silent))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func newTestStore(t *testing.T) (*gorm.DB, repository.Store) {
	db := newTestDB(t)
	return db, repository.NewStore(db)
}

func createUser(t *testing.T, db *gorm.DB, username string, role models.Role) policy.Actor {
	t.Helper()

	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hashed",
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return policy.ActorFromUser(user)
}

func createTask(t *testing.T, db *gorm.DB, title string, creator, assignee uuid.UUID, due *time.Time) *models.Task {
	t.Helper()

	task := &models.Task{
		Title:        title,
		Status:       models.TaskStatusPending,
		DueDate:      due,
		CreatedByID:  creator,
		AssignedToID: assignee,
	}
	require.NoError(t, repository.NewTaskRepository(db).Create(context.Background(), task))
	return task
}

func countNotifications(t *testing.T, db *gorm.DB, taskID uuid.UUID) int64 {
	t.Helper()

	n, err := repository.NewNotificationRepository(db).CountByTask(context.Background(), taskID)
	require.NoError(t, err)
	return n
}

func ptr[T any](v T) *T {
	return &v
}
