package models

import "github.com/google/uuid"

// ListingView is the derived state of a listing computed for display:
// current price, bid count, the standing of the viewer, and the final
// winner once the auction is closed.
type ListingView struct {
	Listing            ListingDB  `json:"listing"`                 // The listing row itself
	BidCount           int        `json:"bid_count"`               // Number of accepted bids
	HighestBidderID    *uuid.UUID `json:"highest_bidder_id"`       // User with the highest accepted bid, if any
	IsOwner            bool       `json:"is_owner"`                // Viewer owns the listing
	IsCurrentHighBidder bool      `json:"is_current_high_bidder"`  // Viewer placed the highest accepted bid
	IsWinner           bool       `json:"is_winner"`               // Listing is closed and viewer won it
	InWatchlist        bool       `json:"in_watchlist"`            // Listing is in the viewer's watchlist
}

// ListingSnapshot is the viewer-independent part of a listing's derived
// state, suitable for caching.
type ListingSnapshot struct {
	Listing         ListingDB  `json:"listing"`           // The listing row
	BidCount        int        `json:"bid_count"`         // Number of accepted bids
	HighestBidderID *uuid.UUID `json:"highest_bidder_id"` // Highest accepted bidder, if any
}
