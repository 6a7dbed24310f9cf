package response_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/buckmanting/todo-tech-test/internal/services/tasks"
	"github.com/buckmanting/todo-tech-test/pkg/rest/response"
	"github.com/stretchr/testify/assert"
)

func TestResolveError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"user not found", tasks.ErrUserNotFound, http.StatusNotFound},
		{"task not found", tasks.ErrTaskNotFound, http.StatusNotFound},
		{"not owner", tasks.ErrUserDoesNotOwnTask, http.StatusForbidden},
		{"id change", tasks.ErrCannotUpdateTaskID, http.StatusBadRequest},
		{"unclassified", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.status, response.ResolveError(tc.err).Status())
		})
	}
}

func TestResolveErrorUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("storage: %w", tasks.ErrTaskNotFound)
	assert.Equal(t, http.StatusNotFound, response.ResolveError(wrapped).Status())
}

func TestInternalErrorHasNoBody(t *testing.T) {
	assert.Nil(t, response.NewInternalError().Body())
}
