package manager

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "user-records-api/internal/domain/manager"
)

func newMock(t *testing.T) (pgxmock.PgxPoolIface, domain.Repository) {
	t.Helper()

	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewRepository(mock)
}

func TestFetchManager(t *testing.T) {
	mock, repo := newMock(t)
	managerID := uuid.New()

	mock.ExpectQuery(SelectManagerByID).
		WithArgs(managerID).
		WillReturnRows(pgxmock.NewRows([]string{"manager_id", "is_active"}).AddRow(managerID, false))

	m, err := repo.FetchManager(context.Background(), managerID)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, managerID, m.ManagerID)
	assert.False(t, m.IsActive)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchManager_AbsentIsNilNotError(t *testing.T) {
	mock, repo := newMock(t)
	managerID := uuid.New()

	mock.ExpectQuery(SelectManagerByID).
		WithArgs(managerID).
		WillReturnError(pgx.ErrNoRows)

	m, err := repo.FetchManager(context.Background(), managerID)
	require.NoError(t, err)
	assert.Nil(t, m)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCounts(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectQuery(CountManagers).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))
	mock.ExpectQuery(CountActiveManagers).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(2)))

	total, err := repo.CountManagers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	active, err := repo.CountActiveManagers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), active)
	require.NoError(t, mock.ExpectationsWereMet())
}
