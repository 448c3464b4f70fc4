package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-auction-commerce/internal/logger"
	"github.com/sbilibin2017/gw-auction-commerce/internal/models"
)

// ListingIndexer defines the interface that the service must implement.
type ListingIndexer interface {
	List(ctx context.Context) ([]models.ListingDB, error)
}

// ListingListResponse represents the listing index
// swagger:model ListingListResponse
type ListingListResponse struct {
	// All listings, newest first
	Listings []models.ListingDB `json:"listings"`
}

// ListingListErrorResponse represents an error response for the listing index
// swagger:model ListingListErrorResponse
type ListingListErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewListingListHandler returns an HTTP handler for the listing index.
// @Summary List listings
// @Description Returns all listings, newest first.
// @Tags auction
// @Produce json
// @Success 200 {object} handlers.ListingListResponse "Listings"
// @Failure 500 {object} handlers.ListingListErrorResponse "Internal server error"
// @Router /listings [get]
func NewListingListHandler(svc ListingIndexer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listings, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list listings", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListingListErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListingListResponse{Listings: listings})
	}
}
