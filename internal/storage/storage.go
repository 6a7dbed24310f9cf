package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/buckmanting/todo-tech-test/internal/models"
)

var (
	ErrTaskNotPresent = errors.New("task not present")
	ErrUserNotPresent = errors.New("user not present")
)

// TaskStore holds every task across all users, keyed by task id. Operations
// take a context so that an I/O-backed implementation can be dropped in
// without changing the service.
type TaskStore interface {
	// List returns the tasks owned by ownerID in insertion order.
	List(ctx context.Context, ownerID uuid.UUID) ([]models.Task, error)
	// Get returns the task with the given id or ErrTaskNotPresent.
	Get(ctx context.Context, taskID uuid.UUID) (models.Task, error)
	// Insert creates a task with a fresh id and server-side timestamps.
	Insert(ctx context.Context, ownerID uuid.UUID, description string) (models.Task, error)
	// Update applies Description and Done from task to the stored task with the
	// same id and refreshes UpdatedAt. Owner, id and CreatedAt are never copied.
	Update(ctx context.Context, task models.Task) (models.Task, error)
	// Delete removes the task. Deleting an absent id is a no-op.
	Delete(ctx context.Context, taskID uuid.UUID) error
}

// UserDirectory resolves a user id to a user record.
type UserDirectory interface {
	// Lookup returns the user or ErrUserNotPresent.
	Lookup(ctx context.Context, userID uuid.UUID) (models.User, error)
}
