package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCommentWriteRepository_Save(t *testing.T) {
	db, teardown := setupAuctionPostgresContainer(t)
	defer teardown()

	ownerID := seedUser(t, db, "owner")
	authorID := seedUser(t, db, "author")
	listingID := seedListing(t, db, ownerID, "Bookshelf", 45)

	repo := NewCommentWriteRepository(db)
	ctx := context.Background()

	commentID := uuid.New()
	err := repo.Save(ctx, commentID, listingID, authorID, "Does it come with the books?")
	assert.NoError(t, err)

	var comment struct {
		ListingID uuid.UUID `db:"listing_id"`
		UserID    uuid.UUID `db:"user_id"`
		Body      string    `db:"body"`
	}
	err = db.Get(&comment, "SELECT listing_id, user_id, body FROM comments WHERE comment_id=$1", commentID)
	assert.NoError(t, err)

	assert.Equal(t, listingID, comment.ListingID)
	assert.Equal(t, authorID, comment.UserID)
	assert.Equal(t, "Does it come with the books?", comment.Body)
}

func TestCommentReadRepository_ListByListing(t *testing.T) {
	db, teardown := setupAuctionPostgresContainer(t)
	defer teardown()

	ownerID := seedUser(t, db, "owner")
	authorID := seedUser(t, db, "author")
	listingID := seedListing(t, db, ownerID, "Bookshelf", 45)
	otherListingID := seedListing(t, db, ownerID, "Rug", 25)

	writeRepo := NewCommentWriteRepository(db)
	readRepo := NewCommentReadRepository(db)
	ctx := context.Background()

	assert.NoError(t, writeRepo.Save(ctx, uuid.New(), listingID, authorID, "first"))
	time.Sleep(10 * time.Millisecond)
	assert.NoError(t, writeRepo.Save(ctx, uuid.New(), listingID, authorID, "second"))
	assert.NoError(t, writeRepo.Save(ctx, uuid.New(), otherListingID, authorID, "elsewhere"))

	comments, err := readRepo.ListByListing(ctx, listingID)
	assert.NoError(t, err)
	assert.Len(t, comments, 2)

	// Свежие комментарии идут первыми
	assert.Equal(t, "second", comments[0].Body)
	assert.Equal(t, "first", comments[1].Body)

	empty, err := readRepo.ListByListing(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Empty(t, empty)
}
