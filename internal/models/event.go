package models

// Auction event operations published to Kafka.
const (
	EventBidAccepted   = "bid_accepted"
	EventListingClosed = "listing_closed"
)

// AuctionEvent represents an auction lifecycle event published to Kafka,
// including the listing, the acting user, and the operation type.
type AuctionEvent struct {
	EventID   string  `json:"event_id"`   // EventID is a unique identifier for the event.
	ListingID string  `json:"listing_id"` // ListingID is the listing the event concerns.
	UserID    string  `json:"user_id"`    // UserID is the user who triggered the event.
	Amount    float64 `json:"amount"`     // Amount is the bid amount or final price, depending on the operation.
	Operation string  `json:"operation"`  // Operation is the event type, e.g. "bid_accepted" or "listing_closed".
	Timestamp int64   `json:"timestamp"`  // Timestamp is the Unix timestamp (in seconds) when the event occurred.
}
