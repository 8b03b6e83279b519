package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/homestay/internal/models"
)

// StateReadRepository reads state reference data.
type StateReadRepository struct {
	db *sqlx.DB
}

func NewStateReadRepository(db *sqlx.DB) *StateReadRepository {
	return &StateReadRepository{db: db}
}

// List returns all states ordered by name.
func (r *StateReadRepository) List(ctx context.Context) ([]models.StateDB, error) {
	const query = `
		SELECT state_id, name
		FROM states
		ORDER BY name ASC
	`

	states := []models.StateDB{}
	err := r.db.SelectContext(ctx, &states, query)
	logQuery(ctx, query, nil, len(states), err)

	return states, err
}

// CityReadRepository reads city reference data.
type CityReadRepository struct {
	db *sqlx.DB
}

func NewCityReadRepository(db *sqlx.DB) *CityReadRepository {
	return &CityReadRepository{db: db}
}

// ListByState returns the cities of a state. An unknown state yields an empty slice.
func (r *CityReadRepository) ListByState(ctx context.Context, stateID int64) ([]models.CityDB, error) {
	const query = `
		SELECT city_id, name, state_id
		FROM cities
		WHERE state_id = $1
		ORDER BY name ASC
	`

	cities := []models.CityDB{}
	err := r.db.SelectContext(ctx, &cities, query, stateID)
	logQuery(ctx, query, []any{stateID}, len(cities), err)

	return cities, err
}

// GetByID returns a city, or nil if none exists.
func (r *CityReadRepository) GetByID(ctx context.Context, cityID int64) (*models.CityDB, error) {
	const query = `
		SELECT city_id, name, state_id
		FROM cities
		WHERE city_id = $1
	`

	var city models.CityDB
	err := r.db.GetContext(ctx, &city, query, cityID)
	logQuery(ctx, query, []any{cityID}, city.Name, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &city, nil
}
