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

// ErrInvalidListing is returned when a listing is created with a blank name
// or description.
var ErrInvalidListing = errors.New("listing name and description are required")

// ListingSaver defines the write operation for creating listings.
type ListingSaver interface {
	Save(ctx context.Context, listing models.ListingDB) error // Inserts a new listing
}

// ListingLister defines the read operation for the listing index.
type ListingLister interface {
	List(ctx context.Context) ([]models.ListingDB, error) // Returns all listings, newest first
}

// ListingService handles listing creation and the listing index.
type ListingService struct {
	saver  ListingSaver
	lister ListingLister
}

// NewListingService creates a new ListingService.
func NewListingService(saver ListingSaver, lister ListingLister) *ListingService {
	return &ListingService{saver: saver, lister: lister}
}

// Create creates a new active listing with no winner at the given asking price.
func (s *ListingService) Create(ctx context.Context, ownerID uuid.UUID, name, description string, price float64, photoURL *string, categoryID *uuid.UUID) (*models.ListingDB, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" {
		return nil, ErrInvalidListing
	}
	if price < 0 || !hasCurrencyPrecision(price) {
		return nil, ErrInvalidAmount
	}

	listing := models.ListingDB{
		ListingID:   uuid.New(),
		Name:        name,
		Description: description,
		Price:       price,
		PhotoURL:    photoURL,
		OwnerID:     ownerID,
		CategoryID:  categoryID,
		Active:      true,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.saver.Save(ctx, listing); err != nil {
		logger.Log.Errorw("failed to save listing", "ownerID", ownerID, "name", name, "error", err)
		return nil, err
	}

	return &listing, nil
}

// List returns all listings, newest first.
func (s *ListingService) List(ctx context.Context) ([]models.ListingDB, error) {
	listings, err := s.lister.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list listings", "error", err)
		return nil, err
	}
	return listings, nil
}
