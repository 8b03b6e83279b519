package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/homestay/internal/models"
)

// BookingWriteRepository handles booking write operations.
type BookingWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewBookingWriteRepository(db *sqlx.DB, txGetter TxGetter) *BookingWriteRepository {
	return &BookingWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a booking of homeID by userID. Nothing prevents repeated
// bookings of the same home.
func (r *BookingWriteRepository) Save(ctx context.Context, userID, homeID uuid.UUID) (*models.BookingDB, error) {
	const query = `
		INSERT INTO bookings (user_id, home_id, created_at)
		VALUES ($1, $2, NOW())
		RETURNING booking_id, user_id, home_id, created_at
	`
	args := []any{userID, homeID}

	var booking models.BookingDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &booking, query, args...)
	logQuery(ctx, query, args, booking.BookingID, err)

	if err != nil {
		return nil, mapPgError(err)
	}
	return &booking, nil
}

// BookingReadRepository handles booking read operations.
type BookingReadRepository struct {
	db *sqlx.DB
}

func NewBookingReadRepository(db *sqlx.DB) *BookingReadRepository {
	return &BookingReadRepository{db: db}
}

// ListByUser returns the bookings made by userID, newest first.
func (r *BookingReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.BookingDB, error) {
	const query = `
		SELECT booking_id, user_id, home_id, created_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	bookings := []models.BookingDB{}
	err := r.db.SelectContext(ctx, &bookings, query, userID)
	logQuery(ctx, query, []any{userID}, len(bookings), err)

	return bookings, err
}
