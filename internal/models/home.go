package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Sort orders accepted by HomeFilter.
const (
	SortByNewest = ""
	SortByPrice  = "price"
	SortByDate   = "date"
)

// HomeDB represents a home listing row.
type HomeDB struct {
	HomeID        uuid.UUID      `json:"id" db:"home_id"`
	Title         string         `json:"title" db:"title"`
	Description   string         `json:"description" db:"description"`
	Price         float64        `json:"price" db:"price"`
	StateID       int64          `json:"stateId" db:"state_id"`
	CityID        int64          `json:"cityId" db:"city_id"`
	AvailableFrom time.Time      `json:"availableFrom" db:"available_from"`
	AvailableTo   time.Time      `json:"availableTo" db:"available_to"`
	Requirements  string         `json:"requirements" db:"requirements"`
	Images        pq.StringArray `json:"images" db:"images"`
	UserID        uuid.UUID      `json:"userId" db:"user_id"`
	CreatedAt     time.Time      `json:"createdAt" db:"created_at"`
}

// Expired reports whether the availability window ended before now.
func (h HomeDB) Expired(now time.Time) bool {
	return h.AvailableTo.Before(now)
}

// HomeDetails is a home joined with its state, city and owner.
type HomeDetails struct {
	HomeDB
	State StateDB `json:"state" db:"state"`
	City  CityDB  `json:"city" db:"city"`
	User  UserDB  `json:"user" db:"owner"`
}

// HomeInput carries the raw, unvalidated fields of a new listing.
type HomeInput struct {
	Title         string
	Description   string
	StateID       string
	CityID        string
	AvailableFrom string
	AvailableTo   string
	Requirements  string
	Images        []string
	Price         string
}

// HomeFilter narrows and orders the active listings.
type HomeFilter struct {
	StateID  *int64
	CityID   *int64
	MinPrice *float64
	MaxPrice *float64
	SortBy   string
}
