package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/tareas/task-lifecycle-api/internal/models"
)

// UserDTO represents the authenticated user in API responses
type UserDTO struct {
	ID        uuid.UUID   `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

// UserSummaryDTO is the short form used in pickers
type UserSummaryDTO struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// LoginResponse is returned by a successful login
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      UserDTO   `json:"user"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt.UTC(),
	}
}

// ToUserSummaryDTOs converts users to their short form
func ToUserSummaryDTOs(users []models.User) []UserSummaryDTO {
	out := make([]UserSummaryDTO, len(users))
	for i, u := range users {
		out[i] = UserSummaryDTO{ID: u.ID, Username: u.Username}
	}
	return out
}
