package models

import (
	"time"

	"github.com/google/uuid"
)

// BidDB represents an accepted bid in the database. Bids are immutable and
// append-only; for a given listing their amounts form a strictly increasing
// sequence in insertion order.
type BidDB struct {
	BidID     uuid.UUID `json:"bid_id" db:"bid_id"`         // Primary key
	ListingID uuid.UUID `json:"listing_id" db:"listing_id"` // Listing the bid was placed on
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // User who placed the bid
	Amount    float64   `json:"amount" db:"amount"`         // Bid amount
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Timestamp of placement
}

// BidOutcome reports the listing state after a bid was accepted.
type BidOutcome struct {
	Bid      BidDB   `json:"bid"`       // The accepted bid
	NewPrice float64 `json:"new_price"` // Listing price after acceptance
	BidCount int     `json:"bid_count"` // Total accepted bids for the listing
}
