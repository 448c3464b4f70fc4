package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-auction-commerce/internal/logger"
	"github.com/sbilibin2017/gw-auction-commerce/internal/models"
)

// WatchlistReadRepository handles watchlist read operations
type WatchlistReadRepository struct {
	db *sqlx.DB
}

func NewWatchlistReadRepository(db *sqlx.DB) *WatchlistReadRepository {
	return &WatchlistReadRepository{db: db}
}

// Exists reports whether the listing is in the user's watchlist.
func (r *WatchlistReadRepository) Exists(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM watchlist WHERE user_id = $1 AND listing_id = $2
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, userID, listingID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, listingID},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// ListByUser returns all listings in the user's watchlist, most recently
// watched first.
func (r *WatchlistReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ListingDB, error) {
	const query = `
		SELECT l.listing_id, l.name, l.description, l.price, l.photo_url, l.owner_id, l.category_id, l.winner_id, l.active, l.created_at
		FROM listings l
		JOIN watchlist w ON w.listing_id = l.listing_id
		WHERE w.user_id = $1
		ORDER BY w.created_at DESC
	`

	var listings []models.ListingDB
	err := r.db.SelectContext(ctx, &listings, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(listings),
		"error", err,
	)

	return listings, err
}

// WatchlistWriteRepository handles watchlist write operations
type WatchlistWriteRepository struct {
	db *sqlx.DB
}

func NewWatchlistWriteRepository(db *sqlx.DB) *WatchlistWriteRepository {
	return &WatchlistWriteRepository{db: db}
}

// Add puts the listing into the user's watchlist. Adding an already watched
// listing is a no-op; the relation never holds duplicates.
func (r *WatchlistWriteRepository) Add(ctx context.Context, userID, listingID uuid.UUID) error {
	query := `
		INSERT INTO watchlist (user_id, listing_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, listing_id) DO NOTHING
	`
	args := []any{userID, listingID}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Remove deletes the listing from the user's watchlist and reports whether
// a row was actually removed.
func (r *WatchlistWriteRepository) Remove(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	query := `
		DELETE FROM watchlist
		WHERE user_id = $1 AND listing_id = $2
	`
	args := []any{userID, listingID}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}
