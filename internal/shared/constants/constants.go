// Package constants defines shared application constants.
package constants

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Context keys set by the auth middleware.
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserName = "user_name"
	ContextKeyUserRole = "user_role"
)

// MaxCommentLength is the server-side limit for task comment bodies.
const MaxCommentLength = 1000
