package models

import (
	"time"

	domain "github.com/buckmanting/todo-tech-test/internal/models"
	"github.com/google/uuid"
)

type Task struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Description string    `json:"description"`
	Done        bool      `json:"done"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func TaskFromDomain(task domain.Task) Task {
	return Task{
		ID:          task.ID,
		UserID:      task.UserID,
		Description: task.Description,
		Done:        task.Done,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// TasksFromDomain always returns a non-nil slice so an empty list serializes
// as [] rather than null.
func TasksFromDomain(tasks []domain.Task) []Task {
	list := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		list = append(list, TaskFromDomain(task))
	}
	return list
}
