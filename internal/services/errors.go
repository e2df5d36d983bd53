package services

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package that the caller can act
// on wraps exactly one of these; the HTTP layer maps them with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
	ErrBadRequest   = errors.New("bad request")
)

var (
	ErrTaskNotFound         = fmt.Errorf("%w: task not found", ErrNotFound)
	ErrAssigneeNotFound     = fmt.Errorf("%w: assigned user not found", ErrNotFound)
	ErrUserNotFound         = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrNotificationNotFound = fmt.Errorf("%w: notification not found", ErrNotFound)

	ErrCannotViewTask         = fmt.Errorf("%w: you do not have access to this task", ErrForbidden)
	ErrCannotChangeStatus     = fmt.Errorf("%w: only the assignee can change the status of this task", ErrForbidden)
	ErrCannotDeleteTask       = fmt.Errorf("%w: only the creator or an administrator can delete this task", ErrForbidden)
	ErrCannotComment          = fmt.Errorf("%w: only the assignee can comment on this task", ErrForbidden)
	ErrCannotViewComments     = fmt.Errorf("%w: you do not have access to the comments of this task", ErrForbidden)
	ErrAdminOnly              = fmt.Errorf("%w: administrator role required", ErrForbidden)
	ErrCannotReadNotification = fmt.Errorf("%w: this notification belongs to another user", ErrForbidden)

	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	ErrInvalidToken       = fmt.Errorf("%w: invalid or expired token", ErrUnauthorized)

	ErrUserConflict = fmt.Errorf("%w: username or email already registered", ErrConflict)

	ErrTitleRequired         = fmt.Errorf("%w: title is required", ErrBadRequest)
	ErrTitleTooLong          = fmt.Errorf("%w: title is too long", ErrBadRequest)
	ErrInvalidStatus         = fmt.Errorf("%w: invalid task status", ErrBadRequest)
	ErrInvalidCommentContent = fmt.Errorf("%w: comment must be between 1 and 1000 characters", ErrBadRequest)
	ErrUsernameTooShort      = fmt.Errorf("%w: username too short", ErrBadRequest)
	ErrPasswordTooShort      = fmt.Errorf("%w: password too short", ErrBadRequest)
	ErrEmailRequired         = fmt.Errorf("%w: email is required", ErrBadRequest)
)
