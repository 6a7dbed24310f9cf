package memory

import (
	"context"
	"sync"
	"time"

	"github.com/buckmanting/todo-tech-test/internal/models"
	"github.com/buckmanting/todo-tech-test/internal/storage"
	"github.com/google/uuid"
)

// TaskStore keeps every task in process memory. A single RWMutex serializes
// all mutations; List and Get take the read lock. The order slice preserves
// insertion order for List.
type TaskStore struct {
	mu    sync.RWMutex
	tasks map[uuid.UUID]*models.Task
	order []uuid.UUID
}

func NewTaskStore() *TaskStore {
	return &TaskStore{
		tasks: make(map[uuid.UUID]*models.Task),
	}
}

func (s *TaskStore) List(ctx context.Context, ownerID uuid.UUID) ([]models.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	owned := make([]models.Task, 0)
	for _, id := range s.order {
		if task := s.tasks[id]; task.UserID == ownerID {
			owned = append(owned, *task)
		}
	}

	return owned, nil
}

func (s *TaskStore) Get(ctx context.Context, taskID uuid.UUID) (models.Task, error) {
	if err := ctx.Err(); err != nil {
		return models.Task{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[taskID]
	if !ok {
		return models.Task{}, storage.ErrTaskNotPresent
	}

	return *task, nil
}

func (s *TaskStore) Insert(ctx context.Context, ownerID uuid.UUID, description string) (models.Task, error) {
	if err := ctx.Err(); err != nil {
		return models.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	task := &models.Task{
		ID:          uuid.New(),
		UserID:      ownerID,
		Description: description,
		Done:        false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.tasks[task.ID] = task
	s.order = append(s.order, task.ID)

	return *task, nil
}

func (s *TaskStore) Update(ctx context.Context, task models.Task) (models.Task, error) {
	if err := ctx.Err(); err != nil {
		return models.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.tasks[task.ID]
	if !ok {
		return models.Task{}, storage.ErrTaskNotPresent
	}

	// Only the mutable fields cross over; owner, id and CreatedAt stay as
	// stored so a malformed caller cannot reparent or re-stamp a task.
	stored.Description = task.Description
	stored.Done = task.Done
	stored.UpdatedAt = time.Now()

	return *stored, nil
}

func (s *TaskStore) Delete(ctx context.Context, taskID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[taskID]; !ok {
		return nil
	}

	delete(s.tasks, taskID)
	for i, id := range s.order {
		if id == taskID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return nil
}
