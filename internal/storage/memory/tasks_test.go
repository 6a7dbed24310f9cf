package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/buckmanting/todo-tech-test/internal/models"
	"github.com/buckmanting/todo-tech-test/internal/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskStore_InsertAssignsServerValues(t *testing.T) {
	store := NewTaskStore()
	owner := uuid.New()

	task, err := store.Insert(context.Background(), owner, "buy milk")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, task.ID)
	assert.Equal(t, owner, task.UserID)
	assert.Equal(t, "buy milk", task.Description)
	assert.False(t, task.Done)
	assert.False(t, task.CreatedAt.IsZero())
	assert.Equal(t, task.CreatedAt, task.UpdatedAt)
}

func TestTaskStore_ListFiltersByOwnerInInsertionOrder(t *testing.T) {
	store := NewTaskStore()
	alice := uuid.New()
	bob := uuid.New()

	first, err := store.Insert(context.Background(), alice, "first")
	require.NoError(t, err)
	_, err = store.Insert(context.Background(), bob, "not alice's")
	require.NoError(t, err)
	second, err := store.Insert(context.Background(), alice, "second")
	require.NoError(t, err)

	tasks, err := store.List(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, first.ID, tasks[0].ID)
	assert.Equal(t, second.ID, tasks[1].ID)
}

func TestTaskStore_ListUnknownOwnerIsEmpty(t *testing.T) {
	store := NewTaskStore()

	tasks, err := store.List(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskStore_GetAbsentTask(t *testing.T) {
	store := NewTaskStore()

	_, err := store.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, storage.ErrTaskNotPresent)
}

func TestTaskStore_UpdateCopiesOnlyMutableFields(t *testing.T) {
	store := NewTaskStore()
	owner := uuid.New()

	created, err := store.Insert(context.Background(), owner, "buy milk")
	require.NoError(t, err)

	updated, err := store.Update(context.Background(), models.Task{
		ID:          created.ID,
		UserID:      uuid.New(), // must not reparent
		Description: "buy oat milk",
		Done:        true,
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, owner, updated.UserID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "buy oat milk", updated.Description)
	assert.True(t, updated.Done)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestTaskStore_UpdateAbsentTask(t *testing.T) {
	store := NewTaskStore()

	_, err := store.Update(context.Background(), models.Task{ID: uuid.New()})
	assert.ErrorIs(t, err, storage.ErrTaskNotPresent)
}

func TestTaskStore_DeleteIsIdempotent(t *testing.T) {
	store := NewTaskStore()
	owner := uuid.New()

	task, err := store.Insert(context.Background(), owner, "buy milk")
	require.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), task.ID))
	require.NoError(t, store.Delete(context.Background(), task.ID))

	_, err = store.Get(context.Background(), task.ID)
	assert.ErrorIs(t, err, storage.ErrTaskNotPresent)

	tasks, err := store.List(context.Background(), owner)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskStore_CancelledContext(t *testing.T) {
	store := NewTaskStore()
	owner := uuid.New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Insert(ctx, owner, "never stored")
	assert.ErrorIs(t, err, context.Canceled)

	tasks, err := store.List(context.Background(), owner)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskStore_ConcurrentInserts(t *testing.T) {
	store := NewTaskStore()
	owner := uuid.New()

	const workers = 32

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := store.Insert(context.Background(), owner, "concurrent")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	tasks, err := store.List(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, tasks, workers)

	seen := make(map[uuid.UUID]bool, workers)
	for _, task := range tasks {
		assert.False(t, seen[task.ID], "duplicate task id %s", task.ID)
		seen[task.ID] = true
	}
}
