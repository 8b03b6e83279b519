package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/homestay/internal/models"
)

const homeColumns = `home_id, title, description, price, state_id, city_id,
	available_from, available_to, requirements, images, user_id, created_at`

// HomeReadRepository handles home read operations.
type HomeReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewHomeReadRepository(db *sqlx.DB, txGetter TxGetter) *HomeReadRepository {
	return &HomeReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the home joined with its state, city and owner, or nil if none exists.
func (r *HomeReadRepository) GetByID(ctx context.Context, homeID uuid.UUID) (*models.HomeDetails, error) {
	const query = `
		SELECT h.home_id, h.title, h.description, h.price, h.state_id, h.city_id,
		       h.available_from, h.available_to, h.requirements, h.images, h.user_id, h.created_at,
		       s.state_id AS "state.state_id", s.name AS "state.name",
		       c.city_id AS "city.city_id", c.name AS "city.name", c.state_id AS "city.state_id",
		       u.user_id AS "owner.user_id", u.name AS "owner.name",
		       u.email AS "owner.email", u.created_at AS "owner.created_at"
		FROM homes h
		JOIN states s ON s.state_id = h.state_id
		JOIN cities c ON c.city_id = h.city_id
		JOIN users u ON u.user_id = h.user_id
		WHERE h.home_id = $1
	`

	var home models.HomeDetails
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &home, query, homeID)
	logQuery(ctx, query, []any{homeID}, home.Title, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &home, nil
}

// ExistsActive reports whether a home with the given id exists and is still
// available at now.
func (r *HomeReadRepository) ExistsActive(ctx context.Context, homeID uuid.UUID, now time.Time) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM homes WHERE home_id = $1 AND available_to >= $2)`

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exists, query, homeID, now)
	logQuery(ctx, query, []any{homeID, now}, exists, err)

	return exists, err
}

// ListActive returns homes whose availability has not ended at now, narrowed by filter.
func (r *HomeReadRepository) ListActive(ctx context.Context, now time.Time, filter models.HomeFilter) ([]models.HomeDB, error) {
	query := "SELECT " + homeColumns + " FROM homes WHERE available_to >= $1"
	args := []any{now}

	if filter.StateID != nil {
		args = append(args, *filter.StateID)
		query += fmt.Sprintf(" AND state_id = $%d", len(args))
	}
	if filter.CityID != nil {
		args = append(args, *filter.CityID)
		query += fmt.Sprintf(" AND city_id = $%d", len(args))
	}
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		query += fmt.Sprintf(" AND price >= $%d", len(args))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		query += fmt.Sprintf(" AND price <= $%d", len(args))
	}

	switch filter.SortBy {
	case models.SortByPrice:
		query += " ORDER BY price ASC, created_at DESC"
	case models.SortByDate:
		query += " ORDER BY available_from ASC, created_at DESC"
	default:
		query += " ORDER BY created_at DESC"
	}

	homes := []models.HomeDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &homes, query, args...)
	logQuery(ctx, query, args, len(homes), err)

	return homes, err
}

// ListActiveByOwner returns the homes owned by userID that are still
// available at now, newest first.
func (r *HomeReadRepository) ListActiveByOwner(ctx context.Context, userID uuid.UUID, now time.Time) ([]models.HomeDB, error) {
	query := "SELECT " + homeColumns + " FROM homes WHERE user_id = $1 AND available_to >= $2 ORDER BY created_at DESC"

	homes := []models.HomeDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &homes, query, userID, now)
	logQuery(ctx, query, []any{userID, now}, len(homes), err)

	return homes, err
}

// HomeWriteRepository handles home write operations.
type HomeWriteRepository struct {
	db *sqlx.DB
}

func NewHomeWriteRepository(db *sqlx.DB) *HomeWriteRepository {
	return &HomeWriteRepository{db: db}
}

// Save inserts a home and returns the stored row. Unknown state, city or
// owner references yield an error wrapping ErrForeignKey.
func (r *HomeWriteRepository) Save(ctx context.Context, home models.HomeDB) (*models.HomeDB, error) {
	query := `
		INSERT INTO homes (title, description, price, state_id, city_id,
			available_from, available_to, requirements, images, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		RETURNING ` + homeColumns

	images := home.Images
	if images == nil {
		images = []string{}
	}
	args := []any{
		home.Title, home.Description, home.Price, home.StateID, home.CityID,
		home.AvailableFrom, home.AvailableTo, home.Requirements, images, home.UserID,
	}

	var saved models.HomeDB
	err := r.db.GetContext(ctx, &saved, query, args...)
	logQuery(ctx, query, args, saved.HomeID, err)

	if err != nil {
		return nil, mapPgError(err)
	}
	return &saved, nil
}

// DeleteExpired removes homes whose availability ended before now and
// returns the number of rows removed. Their bookings cascade.
func (r *HomeWriteRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	const query = `DELETE FROM homes WHERE available_to < $1`

	res, err := r.db.ExecContext(ctx, query, now)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(ctx, query, []any{now}, rowsAffected, err)

	return rowsAffected, err
}
