package context

import (
	"context"

	"github.com/dtroode/teashop-server/internal/model"
)

type userKey struct{}

// Manager represents a request context manager for the authenticated user.
type Manager struct{}

// NewManager creates a new context manager instance.
//
// Returns a pointer to the newly created Manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserToContext returns a copy of ctx carrying user.
//
// Parameters:
//   - ctx: The request context
//   - user: The authenticated user
//
// Returns a new context with the user attached.
func (m *Manager) SetUserToContext(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// GetUserFromContext retrieves the user attached by SetUserToContext.
//
// Parameters:
//   - ctx: The request context
//
// Returns the user and a boolean indicating if a user was found.
func (m *Manager) GetUserFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userKey{}).(model.User)
	return user, ok
}
