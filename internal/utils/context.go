package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

// UserIDContextKey is the request-context key under which the auth
// middleware stores the authenticated user's id.
const UserIDContextKey contextKey = "user_id"

// WithUserID returns a context carrying the authenticated user's id
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, UserIDContextKey, userID)
}

// GetUserIDFromContext extracts the authenticated user's id from the
// request context, as set by the auth middleware.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDContextKey).(uuid.UUID)
	return userID, ok
}
