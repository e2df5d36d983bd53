package middleware

import (
	"log/slog"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/tareas/task-lifecycle-api/internal/constants"
	apierrors "github.com/tareas/task-lifecycle-api/internal/errors"
	"github.com/tareas/task-lifecycle-api/internal/logger"
	"github.com/tareas/task-lifecycle-api/internal/policy"
	"github.com/tareas/task-lifecycle-api/internal/services"
)

// RequireAuth authenticates the request with a bearer token, falling back to
// the token kept in the session cookie by the web client.
func RequireAuth(tokens *services.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			session := sessions.Default(c)
			token, _ = session.Get(constants.SessionKeyToken).(string)
		}

		if token == "" {
			apierrors.Unauthorized(c, "")
			return
		}

		actor, err := tokens.Parse(token)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			return
		}

		// Store the actor in context for easy access in handlers
		c.Set(constants.ContextKeyActor, actor)

		ctx := c.Request.Context()
		log := logger.FromContext(ctx).With(slog.String("user_id", actor.ID.String()))
		c.Request = c.Request.WithContext(logger.WithContext(ctx, log))

		c.Next()
	}
}

// GetActor retrieves the authenticated actor from context
func GetActor(c *gin.Context) (policy.Actor, bool) {
	value, exists := c.Get(constants.ContextKeyActor)
	if !exists {
		return policy.Actor{}, false
	}

	actor, ok := value.(policy.Actor)
	return actor, ok
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
