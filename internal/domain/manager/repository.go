package manager

import (
	"context"
)

type Repository interface {
	// FetchManager returns nil when no such manager exists.
	FetchManager(ctx context.Context, managerID UUID) (*Manager, error)
	CountManagers(ctx context.Context) (int64, error)
	CountActiveManagers(ctx context.Context) (int64, error)
}
