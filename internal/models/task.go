package models

import (
	"time"

	"github.com/google/uuid"
)

// Task is a single to-do item belonging to exactly one user. ID, UserID and
// CreatedAt are assigned by the store on creation and never change afterwards.
type Task struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Description string
	Done        bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTask carries the client-supplied part of a task to be created. Everything
// else is server-assigned.
type NewTask struct {
	Description string
}
