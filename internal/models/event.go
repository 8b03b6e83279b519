package models

// Event types published to the event stream.
const (
	EventHomeCreated    = "home.created"
	EventHomesExpired   = "homes.expired"
	EventBookingCreated = "booking.created"
)

// Event is a domain event published after a successful write.
// Timestamp is Unix seconds.
type Event struct {
	EventID   string `json:"event_id"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
	UserID    string `json:"user_id,omitempty"`
	Payload   any    `json:"payload"`
}
