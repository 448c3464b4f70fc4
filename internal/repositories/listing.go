package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-auction-commerce/internal/logger"
	"github.com/sbilibin2017/gw-auction-commerce/internal/models"
)

// ListingReadRepository handles listing read operations
type ListingReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewListingReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ListingReadRepository {
	return &ListingReadRepository{db: db, txGetter: txGetter}
}

func (r *ListingReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}
	return executor
}

// GetByID returns the listing with the given ID, or nil when absent.
func (r *ListingReadRepository) GetByID(ctx context.Context, listingID uuid.UUID) (*models.ListingDB, error) {
	const query = `
		SELECT listing_id, name, description, price, photo_url, owner_id, category_id, winner_id, active, created_at
		FROM listings
		WHERE listing_id = $1
	`

	var listing models.ListingDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &listing, query, listingID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{listingID},
		"result", listing,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &listing, nil
}

// GetByIDForUpdate returns the listing with the given ID, locking its row
// for the duration of the surrounding transaction. All bid and close
// mutations for one listing serialize on this lock.
func (r *ListingReadRepository) GetByIDForUpdate(ctx context.Context, listingID uuid.UUID) (*models.ListingDB, error) {
	const query = `
		SELECT listing_id, name, description, price, photo_url, owner_id, category_id, winner_id, active, created_at
		FROM listings
		WHERE listing_id = $1
		FOR UPDATE
	`

	var listing models.ListingDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &listing, query, listingID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{listingID},
		"result", listing,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &listing, nil
}

// List returns all listings, newest first.
func (r *ListingReadRepository) List(ctx context.Context) ([]models.ListingDB, error) {
	const query = `
		SELECT listing_id, name, description, price, photo_url, owner_id, category_id, winner_id, active, created_at
		FROM listings
		ORDER BY created_at DESC
	`

	var listings []models.ListingDB
	err := r.db.SelectContext(ctx, &listings, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(listings),
		"error", err,
	)

	return listings, err
}

// ListingWriteRepository handles listing write operations
type ListingWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewListingWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ListingWriteRepository {
	return &ListingWriteRepository{db: db, txGetter: txGetter}
}

func (r *ListingWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}
	return executor
}

// Save inserts a new listing row with active=true and no winner.
func (r *ListingWriteRepository) Save(ctx context.Context, listing models.ListingDB) error {
	query := `
		INSERT INTO listings (listing_id, name, description, price, photo_url, owner_id, category_id, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE, NOW())
	`
	args := []any{listing.ListingID, listing.Name, listing.Description, listing.Price,
		listing.PhotoURL, listing.OwnerID, listing.CategoryID}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
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

	return err
}

// UpdatePrice raises the listing price to the given amount. The update is
// guarded so the price can only move upward and only while the listing is
// active; it reports whether a row was actually changed.
func (r *ListingWriteRepository) UpdatePrice(ctx context.Context, listingID uuid.UUID, amount float64) (bool, error) {
	query := `
		UPDATE listings
		SET price = $2
		WHERE listing_id = $1 AND active AND price < $2
	`
	args := []any{listingID, amount}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
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

// Close marks the listing inactive and records the winner. The update is
// guarded on active so the Active -> Closed transition fires at most once;
// it reports whether the transition happened.
func (r *ListingWriteRepository) Close(ctx context.Context, listingID uuid.UUID, winnerID *uuid.UUID) (bool, error) {
	query := `
		UPDATE listings
		SET active = FALSE, winner_id = $2
		WHERE listing_id = $1 AND active
	`
	args := []any{listingID, winnerID}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
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
