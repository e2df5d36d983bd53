package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/tareas/task-lifecycle-api/internal/middleware"
	"github.com/tareas/task-lifecycle-api/internal/repository"
	"github.com/tareas/task-lifecycle-api/internal/services"
)

// Handlers bundles every HTTP handler of the API.
type Handlers struct {
	Health        *HealthHandler
	Auth          *AuthHandler
	Users         *UserHandler
	Tasks         *TaskHandler
	Comments      *CommentHandler
	Notifications *NotificationHandler
}

// New wires the services over store and builds the handlers.
func New(store repository.Store, tokens *services.TokenManager) *Handlers {
	return &Handlers{
		Health:        NewHealthHandler(store),
		Auth:          NewAuthHandler(services.NewAuthService(store.Users(), tokens)),
		Users:         NewUserHandler(services.NewUserService(store.Users())),
		Tasks:         NewTaskHandler(services.NewTaskService(store)),
		Comments:      NewCommentHandler(services.NewCommentService(store)),
		Notifications: NewNotificationHandler(services.NewNotificationService(store.Notifications())),
	}
}

// RegisterRoutes mounts the health check and the /api tree on r. Session
// middleware must already be installed.
func RegisterRoutes(r *gin.Engine, h *Handlers, tokens *services.TokenManager) {
	RegisterValidators()

	r.GET("/health", h.Health.Health)

	requireAuth := middleware.RequireAuth(tokens)

	api := r.Group("/api")
	{
		// Auth routes (public except /me)
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/logout", h.Auth.Logout)
			auth.GET("/me", requireAuth, h.Auth.GetCurrentUser)
		}

		users := api.Group("/users")
		users.Use(requireAuth)
		{
			users.GET("/usernames", h.Users.ListUsernames)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(requireAuth)
		{
			tasks.POST("", h.Tasks.CreateTask)
			tasks.GET("", h.Tasks.ListAllTasks)
			tasks.GET("/created-by-me", h.Tasks.ListCreatedByMe)
			tasks.GET("/assigned-to-me", h.Tasks.ListAssignedToMe)
			tasks.GET("/:id", h.Tasks.GetTask)
			tasks.PATCH("/:id/status", h.Tasks.UpdateStatus)
			tasks.DELETE("/:id", h.Tasks.DeleteTask)
			tasks.POST("/:id/comments", h.Comments.CreateComment)
			tasks.GET("/:id/comments", h.Comments.ListComments)
		}

		notifications := api.Group("/notifications")
		notifications.Use(requireAuth)
		{
			notifications.GET("", h.Notifications.ListNotifications)
			notifications.PATCH("/:id/read", h.Notifications.MarkRead)
		}
	}
}
