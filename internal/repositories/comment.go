package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-auction-commerce/internal/logger"
	"github.com/sbilibin2017/gw-auction-commerce/internal/models"
)

// CommentReadRepository handles comment read operations
type CommentReadRepository struct {
	db *sqlx.DB
}

func NewCommentReadRepository(db *sqlx.DB) *CommentReadRepository {
	return &CommentReadRepository{db: db}
}

// ListByListing returns all comments for the listing, newest first.
func (r *CommentReadRepository) ListByListing(ctx context.Context, listingID uuid.UUID) ([]models.CommentDB, error) {
	const query = `
		SELECT comment_id, listing_id, user_id, body, created_at
		FROM comments
		WHERE listing_id = $1
		ORDER BY created_at DESC
	`

	var comments []models.CommentDB
	err := r.db.SelectContext(ctx, &comments, query, listingID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{listingID},
		"result", len(comments),
		"error", err,
	)

	return comments, err
}

// CommentWriteRepository handles comment write operations
type CommentWriteRepository struct {
	db *sqlx.DB
}

func NewCommentWriteRepository(db *sqlx.DB) *CommentWriteRepository {
	return &CommentWriteRepository{db: db}
}

// Save inserts a new comment row. Comments are never updated or deleted.
func (r *CommentWriteRepository) Save(ctx context.Context, commentID, listingID, userID uuid.UUID, body string) error {
	query := `
		INSERT INTO comments (comment_id, listing_id, user_id, body, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	args := []any{commentID, listingID, userID, body}

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
