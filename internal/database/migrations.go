package database

import (
	"fmt"
	"log/slog"
	"strings"

	"gorm.io/gorm"
)

// AddIndexes adds the composite indexes backing the task list queries
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns []string
	}{
		// Created-by-me and assigned-to-me listings
		{"tasks", "idx_tasks_creator_created_at", []string{"created_by_id", "created_at"}},
		{"tasks", "idx_tasks_assignee_due_date", []string{"assigned_to_id", "due_date"}},

		// Comment thread ordering
		{"comments", "idx_comments_task_created_at", []string{"task_id", "created_at"}},

		// Notification inbox
		{"notifications", "idx_notifications_user_created_at", []string{"user_id", "created_at"}},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.table, idx.name) {
			slog.Debug("index already exists, skipping", slog.String("index", idx.name))
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, strings.Join(idx.columns, ", "))
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		slog.Info("created index", slog.String("index", idx.name), slog.String("table", idx.table))
	}

	return nil
}
