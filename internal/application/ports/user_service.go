package ports

import (
	"context"

	"user-records-api/internal/domain/user"
)

// UserService is the mutation core: it accepts the plain structured
// request object (decoded JSON), validates and normalizes it, runs the
// integrity gates and drives the store. It never formats transport
// responses; failures come back as the typed errors of the user domain.
type UserService interface {
	CreateUser(ctx context.Context, body map[string]any) (*user.User, error)
	FindUsers(ctx context.Context, body map[string]any) (user.Users, error)
	DeleteUser(ctx context.Context, body map[string]any) (*user.User, error)
	UpdateUsers(ctx context.Context, body map[string]any) (user.Users, error)
	DeactivateUser(ctx context.Context, userID user.UUID) (*user.User, error)
}
