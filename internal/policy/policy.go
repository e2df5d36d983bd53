// Package policy holds the authorization rules for tasks, comments and
// notifications. Every function is a pure predicate over the acting user and
// the resource; callers check that the resource exists before asking.
package policy

import (
	"github.com/google/uuid"
	"github.com/tareas/task-lifecycle-api/internal/models"
)

// Actor is the authenticated identity issuing a request.
type Actor struct {
	ID       uuid.UUID
	Role     models.Role
	Username string
}

// ActorFromUser builds the Actor for a stored user.
func ActorFromUser(u *models.User) Actor {
	return Actor{ID: u.ID, Role: u.Role, Username: u.Username}
}

// IsAdmin reports whether actor holds the admin role.
func IsAdmin(actor Actor) bool {
	return actor.Role == models.RoleAdmin
}

// CanViewTask allows admins, the creator and the assignee.
func CanViewTask(actor Actor, task *models.Task) bool {
	if IsAdmin(actor) {
		return true
	}
	return actor.ID == task.CreatedByID || actor.ID == task.AssignedToID
}

// CanViewComments follows CanViewTask.
func CanViewComments(actor Actor, task *models.Task) bool {
	return CanViewTask(actor, task)
}

// CanComment allows the assignee only. Creators and admins who are not the
// assignee are refused.
func CanComment(actor Actor, task *models.Task) bool {
	return actor.ID == task.AssignedToID
}

// CanChangeStatus allows the assignee only.
func CanChangeStatus(actor Actor, task *models.Task) bool {
	return actor.ID == task.AssignedToID
}

// CanDeleteTask allows admins and the creator.
func CanDeleteTask(actor Actor, task *models.Task) bool {
	return IsAdmin(actor) || actor.ID == task.CreatedByID
}

// CanListAllTasks allows admins only.
func CanListAllTasks(actor Actor) bool {
	return IsAdmin(actor)
}

// CanReadNotification allows the addressee only, admins included.
func CanReadNotification(actor Actor, n *models.Notification) bool {
	return actor.ID == n.UserID
}
