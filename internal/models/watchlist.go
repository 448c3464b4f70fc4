package models

import (
	"time"

	"github.com/google/uuid"
)

// WatchlistDB represents a row of the user-to-listing watch relation.
// The pair (UserID, ListingID) is unique; order of entries is irrelevant.
type WatchlistDB struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Watching user
	ListingID uuid.UUID `json:"listing_id" db:"listing_id"` // Watched listing
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Timestamp the listing was watched
}
