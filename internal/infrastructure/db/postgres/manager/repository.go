package manager

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"user-records-api/internal/domain/manager"
	"user-records-api/internal/infrastructure/db/postgres"
)

// Managers are seeded by the schema migrations and read-only at
// runtime, so the repository exposes lookups only.
type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) manager.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchManager(ctx context.Context, managerID manager.UUID) (*manager.Manager, error) {
	m := new(manager.Manager)
	err := r.db.QueryRow(ctx, SelectManagerByID, managerID).Scan(
		&m.ManagerID,
		&m.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return m, nil
}

func (r *Repository) CountManagers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, CountManagers).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *Repository) CountActiveManagers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, CountActiveManagers).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
