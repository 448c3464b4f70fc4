package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-auction-commerce/internal/jwt"
	"github.com/sbilibin2017/gw-auction-commerce/internal/logger"
	"github.com/sbilibin2017/gw-auction-commerce/internal/models"
	"github.com/sbilibin2017/gw-auction-commerce/internal/services"
)

// BidTokener defines only the methods needed by this handler.
type BidTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// BidPlacer defines the interface that the service must implement.
type BidPlacer interface {
	PlaceBid(ctx context.Context, listingID, bidderID uuid.UUID, amount float64) (*models.BidOutcome, error)
}

// BidRequest represents the JSON body for placing a bid
// swagger:model BidRequest
type BidRequest struct {
	// Bid amount, must strictly exceed the current listing price
	// required: true
	// default: 150.0
	Amount float64 `json:"amount"`
}

// BidResponse represents a successful bid response
// swagger:model BidResponse
type BidResponse struct {
	// Success message
	// default: Bid accepted
	Message string `json:"message"`

	// Listing price after the bid
	NewPrice float64 `json:"new_price"`

	// Total accepted bids for the listing
	BidCount int `json:"bid_count"`
}

// BidErrorResponse represents an error response for bidding
// swagger:model BidErrorResponse
type BidErrorResponse struct {
	// Error message
	// default: Bid must exceed the current price
	Error string `json:"error"`
}

// NewBidHandler returns an HTTP handler for placing a bid on a listing.
// @Summary Place a bid
// @Description Validates the bid against the listing's current price and applies it. A bid is accepted only if it strictly exceeds the current price and the listing is still active.
// @Tags auction
// @Accept json
// @Produce json
// @Param listingID path string true "Listing ID"
// @Param request body handlers.BidRequest true "Bid Request"
// @Success 200 {object} handlers.BidResponse "Bid accepted"
// @Failure 400 {object} handlers.BidErrorResponse "Bid too low, listing closed, or invalid amount"
// @Failure 401 {object} handlers.BidErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.BidErrorResponse "Listing not found"
// @Failure 409 {object} handlers.BidErrorResponse "Concurrent modification, retry"
// @Router /listings/{listingID}/bid [post]
// @Security BearerAuth
func NewBidHandler(
	svc BidPlacer,
	tokenGetter BidTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(BidErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(BidErrorResponse{Error: "Unauthorized"})
			return
		}

		listingID, err := uuid.Parse(chi.URLParam(r, "listingID"))
		if err != nil {
			logger.Log.Warnw("invalid listing ID", "error", err)
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(BidErrorResponse{Error: "Listing not found"})
			return
		}

		var req BidRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode bid request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BidErrorResponse{Error: "Invalid request body"})
			return
		}

		outcome, err := svc.PlaceBid(ctx, listingID, claims.UserID, req.Amount)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrListingNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(BidErrorResponse{Error: "Listing not found"})
			case errors.Is(err, services.ErrListingInactive):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(BidErrorResponse{Error: "The auction is closed"})
			case errors.Is(err, services.ErrBidTooLow):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(BidErrorResponse{Error: "Bid must exceed the current price"})
			case errors.Is(err, services.ErrInvalidAmount):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(BidErrorResponse{Error: "Invalid amount"})
			case errors.Is(err, services.ErrConcurrentModification):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(BidErrorResponse{Error: "Listing was modified concurrently, retry"})
			default:
				logger.Log.Errorw("failed to place bid", "listingID", listingID, "userID", claims.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(BidErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(BidResponse{
			Message:  "Bid accepted",
			NewPrice: outcome.NewPrice,
			BidCount: outcome.BidCount,
		})
	}
}
