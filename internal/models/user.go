package models

import "github.com/google/uuid"

// User is an identity under which tasks are owned. User records are provisioned
// externally; the service only ever reads them.
type User struct {
	ID    uuid.UUID
	Name  string
	Email string
}
