package response

import (
	"errors"

	"github.com/buckmanting/todo-tech-test/internal/services/tasks"
)

// ResolveError maps the task service taxonomy to transport errors. Anything
// unclassified is an internal failure.
func ResolveError(err error) Error {
	switch {
	case errors.Is(err, tasks.ErrUserNotFound):
		return NewNotFoundError("user not found")
	case errors.Is(err, tasks.ErrTaskNotFound):
		return NewNotFoundError("task not found")
	case errors.Is(err, tasks.ErrUserDoesNotOwnTask):
		return NewForbiddenError("user does not own task")
	case errors.Is(err, tasks.ErrCannotUpdateTaskID):
		ve := NewValidationError()
		ve.SetError("id", InvalidValue, "task id cannot be updated")
		return ve
	default:
		return NewInternalError()
	}
}
