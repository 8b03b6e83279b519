package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingDB represents a booking row. A booking claims the home's whole
// availability window; it carries no date range of its own.
type BookingDB struct {
	BookingID uuid.UUID `json:"id" db:"booking_id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	HomeID    uuid.UUID `json:"homeId" db:"home_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
