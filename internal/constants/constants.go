package constants

import "time"

// Context keys shared between middleware and handlers
const (
	ContextKeyActor     = "actor"
	ContextKeyRequestID = "request_id"
	SessionKeyToken     = "token"
)

const SessionCookieName = "task_session"

// Validation limits
const (
	MinUsernameLength    = 3
	MinPasswordLength    = 8
	MaxCommentLength     = 1000
	MaxTitleLength       = 255
	MaxNotificationChars = 255
)

// DefaultTokenTTL is the access token lifetime when JWT_TTL is unset.
const DefaultTokenTTL = 24 * time.Hour

// DateLayout is the calendar date format accepted by the dueDate filter.
const DateLayout = "2006-01-02"
