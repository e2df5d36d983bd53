package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tareas/task-lifecycle-api/internal/models"
	"github.com/tareas/task-lifecycle-api/internal/repository"
)

// UserService serves the user directory.
type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListAssignable returns every regular user except excludingID, ordered by
// username. Administrators are not offered as assignees.
func (s *UserService) ListAssignable(ctx context.Context, excludingID uuid.UUID) ([]models.User, error) {
	users, err := s.userRepo.ListByRole(ctx, models.RoleUser, excludingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
