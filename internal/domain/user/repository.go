package user

import (
	"context"
	"time"
)

type Repository interface {
	CreateUser(ctx context.Context, req User) error
	FetchUsers(ctx context.Context) (Users, error)
	FetchUserByID(ctx context.Context, userID UUID) (*User, error)
	FetchUsersByMobile(ctx context.Context, mobNum string) (Users, error)
	FetchUsersByManager(ctx context.Context, managerID UUID) (Users, error)
	DeleteUserByID(ctx context.Context, userID UUID) error
	DeleteUserByMobile(ctx context.Context, mobNum string) (int64, error)

	// UpdateUsersFields applies one patch to every id inside a single
	// transaction: all rows update with the shared updatedAt stamp or
	// none do.
	UpdateUsersFields(ctx context.Context, userIDs []UUID, patch Patch, updatedAt time.Time) (Users, error)

	ExistsActiveMobile(ctx context.Context, mobNum string) (bool, error)
	DeactivateUser(ctx context.Context, userID UUID, updatedAt time.Time) (*User, error)
	CountUsers(ctx context.Context) (int64, error)
}
