package repositories

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/homestay/internal/models"
)

var homeRowColumns = []string{
	"home_id", "title", "description", "price", "state_id", "city_id",
	"available_from", "available_to", "requirements", "images", "user_id", "created_at",
}

func homeRow(rows *sqlmock.Rows, homeID, ownerID uuid.UUID, price float64, to time.Time) *sqlmock.Rows {
	return rows.AddRow(
		homeID.String(), "Cabin", "Cozy cabin", price, int64(1), int64(2),
		to.Add(-48*time.Hour), to, "No pets", "{https://img/1.jpg,https://img/2.jpg}", ownerID.String(), time.Now(),
	)
}

func TestHomeReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHomeReadRepository(db, nil)
	ctx := context.Background()

	homeID := uuid.New()
	ownerID := uuid.New()
	to := time.Now().Add(72 * time.Hour)

	columns := append(append([]string{}, homeRowColumns...),
		"state.state_id", "state.name",
		"city.city_id", "city.name", "city.state_id",
		"owner.user_id", "owner.name", "owner.email", "owner.created_at",
	)

	t.Run("found with joins", func(t *testing.T) {
		mock.ExpectQuery("FROM homes h JOIN states s").
			WithArgs(homeID.String()).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(
				homeID.String(), "Cabin", "Cozy cabin", 120.5, int64(1), int64(2),
				to.Add(-48*time.Hour), to, "No pets", "{https://img/1.jpg,https://img/2.jpg}", ownerID.String(), time.Now(),
				int64(1), "California",
				int64(2), "Lake Tahoe", int64(1),
				ownerID.String(), "Olivia", "olivia@example.com", time.Now(),
			))

		home, err := repo.GetByID(ctx, homeID)
		require.NoError(t, err)
		require.NotNil(t, home)
		assert.Equal(t, homeID, home.HomeID)
		assert.Equal(t, 120.5, home.Price)
		assert.Equal(t, []string{"https://img/1.jpg", "https://img/2.jpg"}, []string(home.Images))
		assert.Equal(t, "California", home.State.Name)
		assert.Equal(t, "Lake Tahoe", home.City.Name)
		assert.Equal(t, ownerID, home.User.UserID)
		assert.Empty(t, home.User.PasswordHash)
	})

	t.Run("not found", func(t *testing.T) {
		missing := uuid.New()
		mock.ExpectQuery("FROM homes h").
			WithArgs(missing.String()).
			WillReturnRows(sqlmock.NewRows(columns))

		home, err := repo.GetByID(ctx, missing)
		assert.NoError(t, err)
		assert.Nil(t, home)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHomeReadRepository_ExistsActive_UsesTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	homeID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	tx, err := db.Beginx()
	require.NoError(t, err)

	repo := NewHomeReadRepository(db, func(context.Context) *sqlx.Tx { return tx })

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM homes WHERE home_id = $1 AND available_to >= $2)")).
		WithArgs(homeID.String(), now).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsActive(context.Background(), homeID, now)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHomeReadRepository_ExistsActive_Expired(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHomeReadRepository(db, nil)
	homeID := uuid.New()
	now := time.Now()

	mock.ExpectQuery("available_to >= \\$2").
		WithArgs(homeID.String(), now).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.ExistsActive(context.Background(), homeID, now)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHomeReadRepository_ListActive_UsesTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()

	mock.ExpectBegin()
	tx, err := db.Beginx()
	require.NoError(t, err)

	repo := NewHomeReadRepository(db, func(context.Context) *sqlx.Tx { return tx })

	mock.ExpectQuery("FROM homes WHERE available_to >=").
		WithArgs(now).
		WillReturnRows(sqlmock.NewRows(homeRowColumns))

	homes, err := repo.ListActive(context.Background(), now, models.HomeFilter{})
	require.NoError(t, err)
	assert.Empty(t, homes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHomeReadRepository_ListActive(t *testing.T) {
	now := time.Now()
	stateID, cityID := int64(1), int64(2)
	minPrice, maxPrice := 100.0, 300.0

	tests := []struct {
		name      string
		filter    models.HomeFilter
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "no filter",
			filter:    models.HomeFilter{},
			wantQuery: "FROM homes WHERE available_to >= $1 ORDER BY created_at DESC",
			wantArgs:  []any{now},
		},
		{
			name:      "state and city sorted by price",
			filter:    models.HomeFilter{StateID: &stateID, CityID: &cityID, SortBy: models.SortByPrice},
			wantQuery: "WHERE available_to >= $1 AND state_id = $2 AND city_id = $3 ORDER BY price ASC, created_at DESC",
			wantArgs:  []any{now, stateID, cityID},
		},
		{
			name:      "price range sorted by date",
			filter:    models.HomeFilter{MinPrice: &minPrice, MaxPrice: &maxPrice, SortBy: models.SortByDate},
			wantQuery: "AND price >= $2 AND price <= $3 ORDER BY available_from ASC",
			wantArgs:  []any{now, minPrice, maxPrice},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewHomeReadRepository(db, nil)

			args := make([]driver.Value, len(tt.wantArgs))
			for i, a := range tt.wantArgs {
				args[i] = a
			}
			mock.ExpectQuery(regexp.QuoteMeta(tt.wantQuery)).
				WithArgs(args...).
				WillReturnRows(homeRow(sqlmock.NewRows(homeRowColumns), uuid.New(), uuid.New(), 150, now.Add(time.Hour)))

			homes, err := repo.ListActive(context.Background(), now, tt.filter)
			require.NoError(t, err)
			assert.Len(t, homes, 1)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestHomeReadRepository_ListActiveByOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHomeReadRepository(db, nil)
	ownerID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows(homeRowColumns)
	homeRow(rows, uuid.New(), ownerID, 100, now.Add(time.Hour))
	homeRow(rows, uuid.New(), ownerID, 200, now.Add(2*time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta("FROM homes WHERE user_id = $1 AND available_to >= $2 ORDER BY created_at DESC")).
		WithArgs(ownerID.String(), now).
		WillReturnRows(rows)

	homes, err := repo.ListActiveByOwner(context.Background(), ownerID, now)
	require.NoError(t, err)
	assert.Len(t, homes, 2)
	for _, h := range homes {
		assert.Equal(t, ownerID, h.UserID)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHomeWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHomeWriteRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()
	from := time.Now()
	to := from.Add(7 * 24 * time.Hour)
	home := models.HomeDB{
		Title: "Cabin", Description: "Cozy cabin", Price: 150, StateID: 1, CityID: 2,
		AvailableFrom: from, AvailableTo: to, Requirements: "No pets",
		Images: []string{"https://img/1.jpg", "https://img/2.jpg"}, UserID: ownerID,
	}

	t.Run("success", func(t *testing.T) {
		homeID := uuid.New()
		mock.ExpectQuery("INSERT INTO homes").
			WithArgs("Cabin", "Cozy cabin", 150.0, int64(1), int64(2), from, to, "No pets",
				sqlmock.AnyArg(), ownerID.String()).
			WillReturnRows(homeRow(sqlmock.NewRows(homeRowColumns), homeID, ownerID, 150, to))

		saved, err := repo.Save(ctx, home)
		require.NoError(t, err)
		assert.Equal(t, homeID, saved.HomeID)
		assert.Equal(t, ownerID, saved.UserID)
		assert.Len(t, saved.Images, 2)
	})

	t.Run("unknown city", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO homes").
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "homes_city_id_fkey"})

		saved, err := repo.Save(ctx, home)
		assert.ErrorIs(t, err, ErrForeignKey)
		assert.Nil(t, saved)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHomeWriteRepository_DeleteExpired(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHomeWriteRepository(db)
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM homes WHERE available_to < $1")).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.DeleteExpired(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	mock.ExpectExec("DELETE FROM homes").
		WithArgs(now).
		WillReturnError(errors.New("db down"))
	_, err = repo.DeleteExpired(context.Background(), now)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
