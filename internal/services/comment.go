package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-auction-commerce/internal/logger"
	"github.com/sbilibin2017/gw-auction-commerce/internal/models"
)

// ErrEmptyComment is returned when a comment body is blank after trimming.
var ErrEmptyComment = errors.New("comment body is empty")

// CommentWriter defines comment write operations.
type CommentWriter interface {
	Save(ctx context.Context, commentID, listingID, userID uuid.UUID, body string) error // Inserts a comment
}

// CommentReader defines comment read operations.
type CommentReader interface {
	ListByListing(ctx context.Context, listingID uuid.UUID) ([]models.CommentDB, error) // Comments, newest first
}

// CommentService appends and lists the immutable per-listing comment log.
type CommentService struct {
	listings ListingGetter
	writer   CommentWriter
	reader   CommentReader
}

// NewCommentService creates a new CommentService.
func NewCommentService(listings ListingGetter, writer CommentWriter, reader CommentReader) *CommentService {
	return &CommentService{listings: listings, writer: writer, reader: reader}
}

// Add appends a comment to the listing. Closed listings still accept
// comments; the body must be non-blank after trimming.
func (s *CommentService) Add(ctx context.Context, listingID, authorID uuid.UUID, body string) (*models.CommentDB, error) {
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyComment
	}

	listing, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		logger.Log.Errorw("failed to read listing for comment", "listingID", listingID, "error", err)
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}

	comment := models.CommentDB{
		CommentID: uuid.New(),
		ListingID: listingID,
		UserID:    authorID,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.writer.Save(ctx, comment.CommentID, comment.ListingID, comment.UserID, comment.Body); err != nil {
		logger.Log.Errorw("failed to save comment", "listingID", listingID, "authorID", authorID, "error", err)
		return nil, err
	}

	return &comment, nil
}

// List returns all comments for the listing, newest first.
func (s *CommentService) List(ctx context.Context, listingID uuid.UUID) ([]models.CommentDB, error) {
	comments, err := s.reader.ListByListing(ctx, listingID)
	if err != nil {
		logger.Log.Errorw("failed to list comments", "listingID", listingID, "error", err)
		return nil, err
	}
	return comments, nil
}
