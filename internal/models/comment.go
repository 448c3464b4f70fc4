package models

import (
	"time"

	"github.com/google/uuid"
)

// CommentDB represents a user comment on a listing. Comments are immutable
// and append-only; they are served newest-first.
type CommentDB struct {
	CommentID uuid.UUID `json:"comment_id" db:"comment_id"` // Primary key
	ListingID uuid.UUID `json:"listing_id" db:"listing_id"` // Listing the comment belongs to
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Comment author
	Body      string    `json:"body" db:"body"`             // Comment text
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Timestamp of creation
}
