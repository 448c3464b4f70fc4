package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestWatchlistWriteRepository_Add(t *testing.T) {
	db, teardown := setupAuctionPostgresContainer(t)
	defer teardown()

	ownerID := seedUser(t, db, "owner")
	watcherID := seedUser(t, db, "watcher")
	listingID := seedListing(t, db, ownerID, "Mirror", 35)

	repo := NewWatchlistWriteRepository(db)
	ctx := context.Background()

	err := repo.Add(ctx, watcherID, listingID)
	assert.NoError(t, err)

	// Повторное добавление не дублирует запись
	err = repo.Add(ctx, watcherID, listingID)
	assert.NoError(t, err)

	var count int
	err = db.Get(&count, "SELECT COUNT(*) FROM watchlist WHERE user_id=$1 AND listing_id=$2", watcherID, listingID)
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestWatchlistWriteRepository_Remove(t *testing.T) {
	db, teardown := setupAuctionPostgresContainer(t)
	defer teardown()

	ownerID := seedUser(t, db, "owner")
	watcherID := seedUser(t, db, "watcher")
	listingID := seedListing(t, db, ownerID, "Mirror", 35)

	repo := NewWatchlistWriteRepository(db)
	ctx := context.Background()

	assert.NoError(t, repo.Add(ctx, watcherID, listingID))

	removed, err := repo.Remove(ctx, watcherID, listingID)
	assert.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Remove(ctx, watcherID, listingID)
	assert.NoError(t, err)
	assert.False(t, removed)
}

func TestWatchlistReadRepository_Exists(t *testing.T) {
	db, teardown := setupAuctionPostgresContainer(t)
	defer teardown()

	ownerID := seedUser(t, db, "owner")
	watcherID := seedUser(t, db, "watcher")
	listingID := seedListing(t, db, ownerID, "Mirror", 35)

	writeRepo := NewWatchlistWriteRepository(db)
	readRepo := NewWatchlistReadRepository(db)
	ctx := context.Background()

	exists, err := readRepo.Exists(ctx, watcherID, listingID)
	assert.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, writeRepo.Add(ctx, watcherID, listingID))

	exists, err = readRepo.Exists(ctx, watcherID, listingID)
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestWatchlistReadRepository_ListByUser(t *testing.T) {
	db, teardown := setupAuctionPostgresContainer(t)
	defer teardown()

	ownerID := seedUser(t, db, "owner")
	watcherID := seedUser(t, db, "watcher")
	otherID := seedUser(t, db, "other")
	firstID := seedListing(t, db, ownerID, "Mirror", 35)
	secondID := seedListing(t, db, ownerID, "Vase", 15)
	thirdID := seedListing(t, db, ownerID, "Poster", 5)

	writeRepo := NewWatchlistWriteRepository(db)
	readRepo := NewWatchlistReadRepository(db)
	ctx := context.Background()

	assert.NoError(t, writeRepo.Add(ctx, watcherID, firstID))
	time.Sleep(10 * time.Millisecond)
	assert.NoError(t, writeRepo.Add(ctx, watcherID, secondID))
	assert.NoError(t, writeRepo.Add(ctx, otherID, thirdID))

	listings, err := readRepo.ListByUser(ctx, watcherID)
	assert.NoError(t, err)
	assert.Len(t, listings, 2)

	// Недавно добавленные идут первыми
	assert.Equal(t, secondID, listings[0].ListingID)
	assert.Equal(t, firstID, listings[1].ListingID)

	empty, err := readRepo.ListByUser(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Empty(t, empty)
}
