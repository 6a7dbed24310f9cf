package tasks

import (
	"context"
	"errors"

	"github.com/buckmanting/todo-tech-test/internal/models"
	"github.com/buckmanting/todo-tech-test/internal/storage"
	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrUserDoesNotOwnTask = errors.New("user does not own task")
	ErrCannotUpdateTaskID = errors.New("cannot update task id")
)

// Service applies validation and ownership rules over the task store and the
// user directory. Preconditions run in a fixed order and the first failure is
// returned verbatim with no state change; the HTTP layer translates these
// errors to status codes.
type Service struct {
	tasks storage.TaskStore
	users storage.UserDirectory
}

func New(tasks storage.TaskStore, users storage.UserDirectory) *Service {
	return &Service{
		tasks: tasks,
		users: users,
	}
}

// ListTasks returns every task owned by userID in insertion order.
func (s *Service) ListTasks(ctx context.Context, userID uuid.UUID) ([]models.Task, error) {
	if err := s.userExists(ctx, userID); err != nil {
		return nil, err
	}

	return s.tasks.List(ctx, userID)
}

// GetTask returns a single task after checking that the user exists and owns it.
func (s *Service) GetTask(ctx context.Context, userID, taskID uuid.UUID) (models.Task, error) {
	if err := s.userExists(ctx, userID); err != nil {
		return models.Task{}, err
	}

	return s.ownedTask(ctx, userID, taskID)
}

// CreateTask inserts a fresh task owned by userID. Identifier and timestamps
// come from the store; anything the client sent besides the description is
// ignored.
func (s *Service) CreateTask(ctx context.Context, userID uuid.UUID, newTask models.NewTask) (models.Task, error) {
	if err := s.userExists(ctx, userID); err != nil {
		return models.Task{}, err
	}

	return s.tasks.Insert(ctx, userID, newTask.Description)
}

// UpdateTask applies the mutable fields of task to the stored task taskID.
// The id inside the payload must match taskID so a task cannot be renumbered
// through an update.
func (s *Service) UpdateTask(ctx context.Context, userID, taskID uuid.UUID, task models.Task) (models.Task, error) {
	if err := s.userExists(ctx, userID); err != nil {
		return models.Task{}, err
	}

	if _, err := s.ownedTask(ctx, userID, taskID); err != nil {
		return models.Task{}, err
	}

	if task.ID != taskID {
		return models.Task{}, ErrCannotUpdateTaskID
	}

	return s.tasks.Update(ctx, models.Task{
		ID:          taskID,
		Description: task.Description,
		Done:        task.Done,
	})
}

// DeleteTask removes the task. A repeat delete of the same id surfaces
// ErrTaskNotFound because the existence precondition no longer holds.
func (s *Service) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	if err := s.userExists(ctx, userID); err != nil {
		return err
	}

	if _, err := s.ownedTask(ctx, userID, taskID); err != nil {
		return err
	}

	return s.tasks.Delete(ctx, taskID)
}

func (s *Service) userExists(ctx context.Context, userID uuid.UUID) error {
	_, err := s.users.Lookup(ctx, userID)
	if errors.Is(err, storage.ErrUserNotPresent) {
		return ErrUserNotFound
	}

	return err
}

func (s *Service) ownedTask(ctx context.Context, userID, taskID uuid.UUID) (models.Task, error) {
	task, err := s.tasks.Get(ctx, taskID)
	if errors.Is(err, storage.ErrTaskNotPresent) {
		return models.Task{}, ErrTaskNotFound
	}
	if err != nil {
		return models.Task{}, err
	}

	if task.UserID != userID {
		return models.Task{}, ErrUserDoesNotOwnTask
	}

	return task, nil
}
