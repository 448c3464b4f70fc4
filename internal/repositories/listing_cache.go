package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-auction-commerce/internal/logger"
	"github.com/sbilibin2017/gw-auction-commerce/internal/models"
)

// ListingCacheRepository provides cached listing snapshots using Redis
type ListingCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached snapshots
}

// NewListingCacheRepository creates a new repository instance with optional TTL
func NewListingCacheRepository(client *redis.Client, expiration time.Duration) *ListingCacheRepository {
	return &ListingCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetSnapshot fetches a cached listing snapshot by listing ID.
func (r *ListingCacheRepository) GetSnapshot(ctx context.Context, listingID uuid.UUID) (*models.ListingSnapshot, error) {
	key := fmt.Sprintf("listing_view:%s", listingID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("listing snapshot not found in cache for %s", listingID)
		}
		return nil, err
	}

	var snapshot models.ListingSnapshot
	if err := json.Unmarshal([]byte(val), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode cached snapshot for %s: %w", listingID, err)
	}

	logger.Log.Infow(
		"key", key,
		"result", snapshot,
		"error", nil,
	)

	return &snapshot, nil
}

// SetSnapshot caches a listing snapshot with the configured TTL.
func (r *ListingCacheRepository) SetSnapshot(ctx context.Context, snapshot models.ListingSnapshot) error {
	key := fmt.Sprintf("listing_view:%s", snapshot.Listing.ListingID)

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot for %s: %w", snapshot.Listing.ListingID, err)
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", string(data),
		"error", err,
	)

	return err
}

// InvalidateSnapshot removes the cached snapshot for the listing. Called
// after every accepted bid and every close so readers never see stale
// derived state past the write.
func (r *ListingCacheRepository) InvalidateSnapshot(ctx context.Context, listingID uuid.UUID) error {
	key := fmt.Sprintf("listing_view:%s", listingID)

	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"error", err,
	)

	return err
}
