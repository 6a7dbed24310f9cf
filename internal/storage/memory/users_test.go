package memory

import (
	"context"
	"testing"

	"github.com/buckmanting/todo-tech-test/internal/models"
	"github.com/buckmanting/todo-tech-test/internal/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserDirectory_ResolvesAnyID(t *testing.T) {
	dir := NewUserDirectory()

	first, err := dir.Lookup(context.Background(), uuid.New())
	require.NoError(t, err)
	second, err := dir.Lookup(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "aaron", first.Name)
	assert.Equal(t, "aaron@test.com", first.Email)
}

func TestFixedUserDirectory_Lookup(t *testing.T) {
	user := models.User{ID: uuid.New(), Name: "alice", Email: "alice@test.com"}
	dir := NewFixedUserDirectory(user)

	found, err := dir.Lookup(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, found)

	_, err = dir.Lookup(context.Background(), uuid.New())
	assert.ErrorIs(t, err, storage.ErrUserNotPresent)
}
