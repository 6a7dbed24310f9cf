package memory

import (
	"context"

	"github.com/buckmanting/todo-tech-test/internal/models"
	"github.com/buckmanting/todo-tech-test/internal/storage"
	"github.com/google/uuid"
)

// UserDirectory is the production stub: every identifier resolves to the same
// provisioned user, so ownership checks cannot fail through this path.
type UserDirectory struct {
	user models.User
}

func NewUserDirectory() *UserDirectory {
	return &UserDirectory{
		user: models.User{
			ID:    uuid.New(),
			Name:  "aaron",
			Email: "aaron@test.com",
		},
	}
}

func (d *UserDirectory) Lookup(ctx context.Context, userID uuid.UUID) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	return d.user, nil
}

// FixedUserDirectory resolves only the users it was constructed with. It keeps
// the not-found branch of the service reachable, which the stub cannot.
type FixedUserDirectory struct {
	users map[uuid.UUID]models.User
}

func NewFixedUserDirectory(users ...models.User) *FixedUserDirectory {
	d := &FixedUserDirectory{users: make(map[uuid.UUID]models.User, len(users))}
	for _, user := range users {
		d.users[user.ID] = user
	}
	return d
}

func (d *FixedUserDirectory) Lookup(ctx context.Context, userID uuid.UUID) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	user, ok := d.users[userID]
	if !ok {
		return models.User{}, storage.ErrUserNotPresent
	}

	return user, nil
}
