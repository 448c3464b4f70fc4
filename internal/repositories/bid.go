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

// BidReadRepository handles bid read operations
type BidReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewBidReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *BidReadRepository {
	return &BidReadRepository{db: db, txGetter: txGetter}
}

func (r *BidReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}
	return executor
}

// GetHighestForListing returns the highest accepted bid for the listing,
// or nil when no bids exist. Amounts are strictly increasing per listing,
// so the highest amount and the most recent bid always agree.
func (r *BidReadRepository) GetHighestForListing(ctx context.Context, listingID uuid.UUID) (*models.BidDB, error) {
	const query = `
		SELECT bid_id, listing_id, user_id, amount, created_at
		FROM bids
		WHERE listing_id = $1
		ORDER BY amount DESC
		LIMIT 1
	`

	var bid models.BidDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &bid, query, listingID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{listingID},
		"result", bid,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &bid, nil
}

// CountForListing returns the number of accepted bids for the listing.
func (r *BidReadRepository) CountForListing(ctx context.Context, listingID uuid.UUID) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM bids
		WHERE listing_id = $1
	`

	var count int
	err := sqlx.GetContext(ctx, r.executor(ctx), &count, query, listingID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{listingID},
		"result", count,
		"error", err,
	)

	return count, err
}

// ListByListing returns all bids for the listing, newest first.
func (r *BidReadRepository) ListByListing(ctx context.Context, listingID uuid.UUID) ([]models.BidDB, error) {
	const query = `
		SELECT bid_id, listing_id, user_id, amount, created_at
		FROM bids
		WHERE listing_id = $1
		ORDER BY created_at DESC
	`

	var bids []models.BidDB
	err := r.db.SelectContext(ctx, &bids, query, listingID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{listingID},
		"result", len(bids),
		"error", err,
	)

	return bids, err
}

// BidWriteRepository handles bid write operations
type BidWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewBidWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *BidWriteRepository {
	return &BidWriteRepository{db: db, txGetter: txGetter}
}

func (r *BidWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}
	return executor
}

// Save inserts a new bid row. Bids are never updated or deleted.
func (r *BidWriteRepository) Save(ctx context.Context, bidID, listingID, userID uuid.UUID, amount float64) error {
	query := `
		INSERT INTO bids (bid_id, listing_id, user_id, amount, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	args := []any{bidID, listingID, userID, amount}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
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
