package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"user-records-api/internal/domain/user"
	"user-records-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) user.Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateUser(ctx context.Context, req user.User) error {
	_, err := r.db.Exec(
		ctx,
		InsertUser,
		req.UserID, req.FullName, req.MobNum, req.PanNum, req.ManagerID,
		req.CreatedAt, req.UpdatedAt, req.IsActive,
	)
	if err != nil {
		// the partial unique index backstops the service-level probe
		// under concurrent creates
		if postgres.IsPgUniqueViolation(err) {
			return fmt.Errorf("%w: %s", user.ErrDuplicateActiveMobile, req.MobNum)
		}
		if postgres.IsPgForeignKeyViolation(err) {
			return fmt.Errorf("%w: %s", user.ErrManagerNotFound, req.ManagerID)
		}
		return err
	}

	return nil
}

func (r *Repository) FetchUsers(ctx context.Context) (user.Users, error) {
	return r.fetchMany(ctx, SelectUsers)
}

func (r *Repository) FetchUserByID(ctx context.Context, userID user.UUID) (*user.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByID, userID).Scan(
		&u.UserID,
		&u.FullName,
		&u.MobNum,
		&u.PanNum,
		&u.ManagerID,

		&u.CreatedAt,
		&u.UpdatedAt,

		&u.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) FetchUsersByMobile(ctx context.Context, mobNum string) (user.Users, error) {
	return r.fetchMany(ctx, SelectUsersByMobile, mobNum)
}

func (r *Repository) FetchUsersByManager(ctx context.Context, managerID user.UUID) (user.Users, error) {
	return r.fetchMany(ctx, SelectUsersByManager, managerID)
}

func (r *Repository) DeleteUserByID(ctx context.Context, userID user.UUID) error {
	ct, err := r.db.Exec(ctx, DeleteUserByID, userID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", user.ErrNotFound, userID)
	}

	return nil
}

func (r *Repository) DeleteUserByMobile(ctx context.Context, mobNum string) (int64, error) {
	ct, err := r.db.Exec(ctx, DeleteUserByMobile, mobNum)
	if err != nil {
		return 0, err
	}

	return ct.RowsAffected(), nil
}

// UpdateUsersFields rewrites the editable fields of every listed row
// inside one transaction: each row is read under lock, the patch is
// merged over its stored values and the row rewritten with the shared
// updatedAt stamp. A missing id aborts the whole batch.
func (r *Repository) UpdateUsersFields(ctx context.Context, userIDs []user.UUID, patch user.Patch, updatedAt time.Time) (user.Users, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	updated := make(user.Users, 0, len(userIDs))
	for _, userID := range userIDs {
		u := new(User)
		err = tx.QueryRow(ctx, SelectUserByIDForUpdate, userID).Scan(
			&u.UserID,
			&u.FullName,
			&u.MobNum,
			&u.PanNum,
			&u.ManagerID,

			&u.CreatedAt,
			&u.UpdatedAt,

			&u.IsActive,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, fmt.Errorf("%w: %s", user.ErrNotFound, userID)
			}
			return nil, err
		}

		if patch.FullName != nil {
			u.FullName = *patch.FullName
		}
		if patch.MobNum != nil {
			u.MobNum = *patch.MobNum
		}
		if patch.PanNum != nil {
			u.PanNum = *patch.PanNum
		}
		if patch.ManagerID != nil {
			u.ManagerID = *patch.ManagerID
		}
		u.UpdatedAt = updatedAt

		if _, err = tx.Exec(ctx, UpdateUserFields,
			u.FullName, u.MobNum, u.PanNum, u.ManagerID, u.UpdatedAt, u.UserID,
		); err != nil {
			if postgres.IsPgUniqueViolation(err) {
				return nil, fmt.Errorf("%w: %s", user.ErrDuplicateActiveMobile, u.MobNum)
			}
			if postgres.IsPgForeignKeyViolation(err) {
				return nil, fmt.Errorf("%w: %s", user.ErrManagerNotFound, u.ManagerID)
			}
			return nil, err
		}

		updated = append(updated, fromDBModel(u))
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}

func (r *Repository) ExistsActiveMobile(ctx context.Context, mobNum string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, ExistsActiveMobile, mobNum).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *Repository) DeactivateUser(ctx context.Context, userID user.UUID, updatedAt time.Time) (*user.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, DeactivateUserByID, userID, updatedAt).Scan(
		&u.UserID,
		&u.FullName,
		&u.MobNum,
		&u.PanNum,
		&u.ManagerID,

		&u.CreatedAt,
		&u.UpdatedAt,

		&u.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", user.ErrNotFound, userID)
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, CountUsers).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *Repository) fetchMany(ctx context.Context, query string, args ...any) (user.Users, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var us Users
	for rows.Next() {
		u := new(User)

		if err = rows.Scan(
			&u.UserID,
			&u.FullName,
			&u.MobNum,
			&u.PanNum,
			&u.ManagerID,

			&u.CreatedAt,
			&u.UpdatedAt,

			&u.IsActive,
		); err != nil {
			return nil, err
		}

		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&us), nil
}
