package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/homestay/internal/models"
)

func TestStateReadRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStateReadRepository(db)

	mock.ExpectQuery("SELECT state_id, name FROM states ORDER BY name ASC").
		WillReturnRows(sqlmock.NewRows([]string{"state_id", "name"}).
			AddRow(int64(1), "California").
			AddRow(int64(2), "New York"))

	states, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.StateDB{{StateID: 1, Name: "California"}, {StateID: 2, Name: "New York"}}, states)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCityReadRepository_ListByState(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCityReadRepository(db)
	ctx := context.Background()

	t.Run("cities of state", func(t *testing.T) {
		mock.ExpectQuery("FROM cities WHERE state_id =").
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"city_id", "name", "state_id"}).
				AddRow(int64(1), "Lake Tahoe", int64(1)).
				AddRow(int64(2), "San Francisco", int64(1)))

		cities, err := repo.ListByState(ctx, 1)
		require.NoError(t, err)
		require.Len(t, cities, 2)
		for _, c := range cities {
			assert.Equal(t, int64(1), c.StateID)
		}
	})

	t.Run("unknown state yields empty slice", func(t *testing.T) {
		mock.ExpectQuery("FROM cities WHERE state_id =").
			WithArgs(int64(999)).
			WillReturnRows(sqlmock.NewRows([]string{"city_id", "name", "state_id"}))

		cities, err := repo.ListByState(ctx, 999)
		require.NoError(t, err)
		assert.NotNil(t, cities)
		assert.Empty(t, cities)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCityReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCityReadRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("WHERE city_id =").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"city_id", "name", "state_id"}).AddRow(int64(5), "Miami", int64(3)))
	city, err := repo.GetByID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, &models.CityDB{CityID: 5, Name: "Miami", StateID: 3}, city)

	mock.ExpectQuery("WHERE city_id =").
		WithArgs(int64(6)).
		WillReturnRows(sqlmock.NewRows([]string{"city_id", "name", "state_id"}))
	city, err = repo.GetByID(ctx, 6)
	assert.NoError(t, err)
	assert.Nil(t, city)

	mock.ExpectQuery("WHERE city_id =").
		WithArgs(int64(7)).
		WillReturnError(errors.New("db down"))
	_, err = repo.GetByID(ctx, 7)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
