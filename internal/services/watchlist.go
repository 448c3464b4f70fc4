package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-auction-commerce/internal/logger"
	"github.com/sbilibin2017/gw-auction-commerce/internal/models"
)

// ListingGetter resolves a listing by ID.
type ListingGetter interface {
	GetByID(ctx context.Context, listingID uuid.UUID) (*models.ListingDB, error) // Returns a listing or nil
}

// WatchlistWriter defines watchlist mutations.
type WatchlistWriter interface {
	Add(ctx context.Context, userID, listingID uuid.UUID) error             // Adds a listing to the watchlist
	Remove(ctx context.Context, userID, listingID uuid.UUID) (bool, error)  // Removes, reporting whether a row existed
}

// WatchlistReader defines watchlist read operations.
type WatchlistReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ListingDB, error) // Watched listings, most recent first
}

// WatchlistService toggles and lists per-user watchlists.
type WatchlistService struct {
	listings ListingGetter
	writer   WatchlistWriter
	reader   WatchlistReader
}

// NewWatchlistService creates a new WatchlistService.
func NewWatchlistService(listings ListingGetter, writer WatchlistWriter, reader WatchlistReader) *WatchlistService {
	return &WatchlistService{listings: listings, writer: writer, reader: reader}
}

// Toggle flips the listing's membership in the user's watchlist and returns
// the new membership. Closed listings may stay watchlisted; toggling twice
// in a row restores the original state.
func (s *WatchlistService) Toggle(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	listing, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		logger.Log.Errorw("failed to read listing for watchlist toggle", "listingID", listingID, "error", err)
		return false, err
	}
	if listing == nil {
		return false, ErrListingNotFound
	}

	removed, err := s.writer.Remove(ctx, userID, listingID)
	if err != nil {
		logger.Log.Errorw("failed to remove watchlist entry", "userID", userID, "listingID", listingID, "error", err)
		return false, err
	}
	if removed {
		return false, nil
	}

	if err := s.writer.Add(ctx, userID, listingID); err != nil {
		logger.Log.Errorw("failed to add watchlist entry", "userID", userID, "listingID", listingID, "error", err)
		return false, err
	}
	return true, nil
}

// List returns the user's watched listings, most recently watched first.
func (s *WatchlistService) List(ctx context.Context, userID uuid.UUID) ([]models.ListingDB, error) {
	listings, err := s.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list watchlist", "userID", userID, "error", err)
		return nil, err
	}
	return listings, nil
}
