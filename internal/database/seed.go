package database

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tareas/task-lifecycle-api/internal/config"
	"github.com/tareas/task-lifecycle-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin provisions the administrator account described by the ADMIN_*
// settings. It is a no-op when the settings are incomplete or the email is
// already registered.
func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	if !cfg.AdminSeedConfigured() {
		slog.Warn("admin seed variables (ADMIN_EMAIL, ADMIN_USERNAME, ADMIN_PASSWORD) not set, skipping admin seed")
		return nil
	}

	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		slog.Info("admin user already exists, skipping seed", slog.String("email", email))
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Username:     cfg.AdminUsername,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	slog.Info("admin user created", slog.String("email", admin.Email), slog.String("id", admin.ID.String()))
	return nil
}
