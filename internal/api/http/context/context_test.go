package context

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dtroode/teashop-server/internal/model"
)

func TestManager_SetAndGetUser(t *testing.T) {
	m := NewManager()
	user := model.User{ID: 1, Username: "admin"}

	ctx := m.SetUserToContext(context.Background(), user)

	got, ok := m.GetUserFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, user, got)
}

func TestManager_GetUser_Missing(t *testing.T) {
	m := NewManager()

	got, ok := m.GetUserFromContext(context.Background())
	assert.False(t, ok)
	assert.Equal(t, model.User{}, got)
}

func TestManager_GetUser_ForeignValue(t *testing.T) {
	m := NewManager()
	ctx := context.WithValue(context.Background(), "user", model.User{ID: 1})

	_, ok := m.GetUserFromContext(ctx)
	assert.False(t, ok)
}

func TestManager_ImplementsInterface(t *testing.T) {
	var _ model.ContextManager = NewManager()
}
