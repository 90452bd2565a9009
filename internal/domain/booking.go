package domain

import "time"

// Booking records a player reserving a stringer's service.
// Notes is nil when the player left none.
type Booking struct {
	ID         int64
	StringerID int64
	PlayerName string
	Notes      *string
	CreatedAt  time.Time
}
