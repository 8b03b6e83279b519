package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database.
// PasswordHash holds the bcrypt hash and is never serialized.
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// Profile is a user together with the homes they own and the bookings they made.
type Profile struct {
	UserDB
	Homes    []HomeDB    `json:"homes"`
	Bookings []BookingDB `json:"bookings"`
}
