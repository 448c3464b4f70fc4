package services

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-auction-commerce/internal/logger"
	"github.com/sbilibin2017/gw-auction-commerce/internal/models"
	"github.com/segmentio/kafka-go"
)

// Error variables
var (
	// ErrListingNotFound is returned when no listing exists for the given ID.
	ErrListingNotFound = errors.New("listing not found")
	// ErrListingInactive is returned when an operation requires an active listing but the auction is closed.
	ErrListingInactive = errors.New("listing is closed")
	// ErrBidTooLow is returned when a bid does not exceed the current listing price.
	ErrBidTooLow = errors.New("bid must exceed the current price")
	// ErrInvalidAmount is returned when an amount is negative or has more than two decimal places.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNotOwner is returned when a close is requested by someone other than the listing owner.
	ErrNotOwner = errors.New("only the owner may close the listing")
	// ErrConcurrentModification is returned when a guarded update lost a race
	// with a concurrent writer; the caller may retry.
	ErrConcurrentModification = errors.New("listing was modified concurrently")
)

// ListingReader defines listing read operations used by the auction service.
type ListingReader interface {
	GetByID(ctx context.Context, listingID uuid.UUID) (*models.ListingDB, error)          // Returns a listing or nil
	GetByIDForUpdate(ctx context.Context, listingID uuid.UUID) (*models.ListingDB, error) // Returns a listing, locking its row
}

// ListingWriter defines listing mutations used by the auction service.
type ListingWriter interface {
	UpdatePrice(ctx context.Context, listingID uuid.UUID, amount float64) (bool, error)    // Raises the price, guarded
	Close(ctx context.Context, listingID uuid.UUID, winnerID *uuid.UUID) (bool, error)     // Marks the listing closed, guarded
}

// BidReader defines bid read operations.
type BidReader interface {
	GetHighestForListing(ctx context.Context, listingID uuid.UUID) (*models.BidDB, error) // Highest accepted bid or nil
	CountForListing(ctx context.Context, listingID uuid.UUID) (int, error)                // Number of accepted bids
}

// BidWriter defines bid write operations.
type BidWriter interface {
	Save(ctx context.Context, bidID, listingID, userID uuid.UUID, amount float64) error // Inserts an accepted bid
}

// WatchlistChecker reports watchlist membership.
type WatchlistChecker interface {
	Exists(ctx context.Context, userID, listingID uuid.UUID) (bool, error) // Whether the user watches the listing
}

// ListingSnapshotCache caches viewer-independent listing state.
type ListingSnapshotCache interface {
	GetSnapshot(ctx context.Context, listingID uuid.UUID) (*models.ListingSnapshot, error) // Returns cached snapshot
	SetSnapshot(ctx context.Context, snapshot models.ListingSnapshot) error                // Caches snapshot
	InvalidateSnapshot(ctx context.Context, listingID uuid.UUID) error                     // Drops cached snapshot
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AuctionService implements the bidding engine and the auction lifecycle:
// placing bids, closing listings, and deriving view state.
type AuctionService struct {
	listingReader ListingReader
	listingWriter ListingWriter
	bidReader     BidReader
	bidWriter     BidWriter
	watchlist     WatchlistChecker
	cache         ListingSnapshotCache
	kafkaWriter   KafkaWriter
}

// NewAuctionService creates a new AuctionService.
func NewAuctionService(
	listingReader ListingReader,
	listingWriter ListingWriter,
	bidReader BidReader,
	bidWriter BidWriter,
	watchlist WatchlistChecker,
	cache ListingSnapshotCache,
	kafkaWriter KafkaWriter,
) *AuctionService {
	return &AuctionService{
		listingReader: listingReader,
		listingWriter: listingWriter,
		bidReader:     bidReader,
		bidWriter:     bidWriter,
		watchlist:     watchlist,
		cache:         cache,
		kafkaWriter:   kafkaWriter,
	}
}

// hasCurrencyPrecision reports whether the amount fits two decimal places.
func hasCurrencyPrecision(amount float64) bool {
	cents := amount * 100
	return math.Abs(cents-math.Round(cents)) < 1e-9
}

// publishEvent publishes an auction event to Kafka. Publishing never fails
// the business operation that produced the event.
func (s *AuctionService) publishEvent(ctx context.Context, event models.AuctionEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal auction event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.ListingID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish auction event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Auction event published to Kafka", "event_id", event.EventID, "operation", event.Operation)
	}
}

// invalidateSnapshot drops the cached snapshot after a mutation.
func (s *AuctionService) invalidateSnapshot(ctx context.Context, listingID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateSnapshot(ctx, listingID); err != nil {
		logger.Log.Errorw("failed to invalidate listing snapshot", "listingID", listingID, "error", err)
	}
}

// PlaceBid validates and applies a bid against the listing's current price.
// A bid is accepted iff it strictly exceeds the current price; acceptance is
// the only way the price changes. The caller must run this under the
// transaction middleware so the locked read and the guarded update execute
// as one serialized unit per listing.
func (s *AuctionService) PlaceBid(ctx context.Context, listingID, bidderID uuid.UUID, amount float64) (*models.BidOutcome, error) {
	if amount < 0 || !hasCurrencyPrecision(amount) {
		logger.Log.Warnw("rejected bid with invalid amount", "listingID", listingID, "amount", amount)
		return nil, ErrInvalidAmount
	}

	listing, err := s.listingReader.GetByIDForUpdate(ctx, listingID)
	if err != nil {
		logger.Log.Errorw("failed to read listing for bid", "listingID", listingID, "error", err)
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}
	if !listing.Active {
		return nil, ErrListingInactive
	}
	if amount <= listing.Price {
		return nil, ErrBidTooLow
	}

	applied, err := s.listingWriter.UpdatePrice(ctx, listingID, amount)
	if err != nil {
		logger.Log.Errorw("failed to update listing price", "listingID", listingID, "amount", amount, "error", err)
		return nil, err
	}
	if !applied {
		// The locked read saw an acceptable state but the guarded update
		// matched nothing: a concurrent writer got there first.
		logger.Log.Warnw("lost bid race", "listingID", listingID, "amount", amount)
		return nil, ErrConcurrentModification
	}

	bid := models.BidDB{
		BidID:     uuid.New(),
		ListingID: listingID,
		UserID:    bidderID,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.bidWriter.Save(ctx, bid.BidID, bid.ListingID, bid.UserID, bid.Amount); err != nil {
		logger.Log.Errorw("failed to save bid", "listingID", listingID, "bidderID", bidderID, "error", err)
		return nil, err
	}

	count, err := s.bidReader.CountForListing(ctx, listingID)
	if err != nil {
		logger.Log.Errorw("failed to count bids after acceptance", "listingID", listingID, "error", err)
		return nil, err
	}

	s.invalidateSnapshot(ctx, listingID)

	event := models.AuctionEvent{
		EventID:   uuid.NewString(),
		ListingID: listingID.String(),
		UserID:    bidderID.String(),
		Amount:    amount,
		Operation: models.EventBidAccepted,
		Timestamp: time.Now().Unix(),
	}
	s.publishEvent(ctx, event)

	return &models.BidOutcome{Bid: bid, NewPrice: amount, BidCount: count}, nil
}

// Close performs the one-way Active -> Closed transition. Only the owner may
// close; the winner is the highest bidder at the moment of closing, or none
// when the auction received no bids. Runs under the same per-listing lock as
// PlaceBid so a bid accepted after the winner snapshot cannot be dropped.
func (s *AuctionService) Close(ctx context.Context, listingID, requesterID uuid.UUID) (*models.ListingDB, error) {
	listing, err := s.listingReader.GetByIDForUpdate(ctx, listingID)
	if err != nil {
		logger.Log.Errorw("failed to read listing for close", "listingID", listingID, "error", err)
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}
	if listing.OwnerID != requesterID {
		return nil, ErrNotOwner
	}
	if !listing.Active {
		return nil, ErrListingInactive
	}

	var winnerID *uuid.UUID
	highest, err := s.bidReader.GetHighestForListing(ctx, listingID)
	if err != nil {
		logger.Log.Errorw("failed to read highest bid for close", "listingID", listingID, "error", err)
		return nil, err
	}
	if highest != nil {
		winnerID = &highest.UserID
	}

	closed, err := s.listingWriter.Close(ctx, listingID, winnerID)
	if err != nil {
		logger.Log.Errorw("failed to close listing", "listingID", listingID, "error", err)
		return nil, err
	}
	if !closed {
		logger.Log.Warnw("lost close race", "listingID", listingID)
		return nil, ErrConcurrentModification
	}

	s.invalidateSnapshot(ctx, listingID)

	event := models.AuctionEvent{
		EventID:   uuid.NewString(),
		ListingID: listingID.String(),
		UserID:    requesterID.String(),
		Amount:    listing.Price,
		Operation: models.EventListingClosed,
		Timestamp: time.Now().Unix(),
	}
	s.publishEvent(ctx, event)

	listing.Active = false
	listing.WinnerID = winnerID
	return listing, nil
}

// View computes the derived state of a listing for the given viewer. All
// privilege flags are false for an anonymous viewer (nil viewerID). The
// viewer-independent part is served from the snapshot cache when possible.
func (s *AuctionService) View(ctx context.Context, listingID uuid.UUID, viewerID *uuid.UUID) (*models.ListingView, error) {
	snapshot, err := s.snapshot(ctx, listingID)
	if err != nil {
		return nil, err
	}

	view := models.ListingView{
		Listing:         snapshot.Listing,
		BidCount:        snapshot.BidCount,
		HighestBidderID: snapshot.HighestBidderID,
	}
	if viewerID == nil {
		return &view, nil
	}

	view.IsOwner = snapshot.Listing.OwnerID == *viewerID
	view.IsCurrentHighBidder = snapshot.HighestBidderID != nil && *snapshot.HighestBidderID == *viewerID
	view.IsWinner = !snapshot.Listing.Active && snapshot.Listing.WinnerID != nil && *snapshot.Listing.WinnerID == *viewerID

	inWatchlist, err := s.watchlist.Exists(ctx, *viewerID, listingID)
	if err != nil {
		logger.Log.Errorw("failed to check watchlist membership", "listingID", listingID, "viewerID", *viewerID, "error", err)
		return nil, err
	}
	view.InWatchlist = inWatchlist

	return &view, nil
}

// snapshot returns the viewer-independent listing state, from cache when
// available, otherwise computed from the store and cached.
func (s *AuctionService) snapshot(ctx context.Context, listingID uuid.UUID) (*models.ListingSnapshot, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetSnapshot(ctx, listingID); err == nil {
			return cached, nil
		}
	}

	listing, err := s.listingReader.GetByID(ctx, listingID)
	if err != nil {
		logger.Log.Errorw("failed to read listing", "listingID", listingID, "error", err)
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}

	highest, err := s.bidReader.GetHighestForListing(ctx, listingID)
	if err != nil {
		logger.Log.Errorw("failed to read highest bid", "listingID", listingID, "error", err)
		return nil, err
	}
	count, err := s.bidReader.CountForListing(ctx, listingID)
	if err != nil {
		logger.Log.Errorw("failed to count bids", "listingID", listingID, "error", err)
		return nil, err
	}

	snapshot := models.ListingSnapshot{
		Listing:  *listing,
		BidCount: count,
	}
	if highest != nil {
		snapshot.HighestBidderID = &highest.UserID
	}

	if s.cache != nil {
		if err := s.cache.SetSnapshot(ctx, snapshot); err != nil {
			logger.Log.Errorw("failed to cache listing snapshot", "listingID", listingID, "error", err)
		}
	}

	return &snapshot, nil
}
