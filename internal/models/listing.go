package models

import (
	"time"

	"github.com/google/uuid"
)

// ListingDB represents an auction listing row in the database.
// Price starts at the initial asking price and only ever increases through
// accepted bids. WinnerID is set exactly once, when the owner closes the
// listing, and stays NULL if the auction closed without bids.
type ListingDB struct {
	ListingID   uuid.UUID  `json:"listing_id" db:"listing_id"`   // Primary key
	Name        string     `json:"name" db:"name"`               // Listing title
	Description string     `json:"description" db:"description"` // Free-text description
	Price       float64    `json:"price" db:"price"`             // Current price (initial ask or highest accepted bid)
	PhotoURL    *string    `json:"photo_url" db:"photo_url"`     // Optional photo reference
	OwnerID     uuid.UUID  `json:"owner_id" db:"owner_id"`       // Listing owner
	CategoryID  *uuid.UUID `json:"category_id" db:"category_id"` // Optional category
	WinnerID    *uuid.UUID `json:"winner_id" db:"winner_id"`     // Highest bidder at close time, if any
	Active      bool       `json:"active" db:"active"`           // False once the owner has closed the auction
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`   // Creation timestamp
}
