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

// CloseTokener defines only the methods needed by this handler.
type CloseTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// ListingCloser defines the interface that the service must implement.
type ListingCloser interface {
	Close(ctx context.Context, listingID, requesterID uuid.UUID) (*models.ListingDB, error)
}

// CloseResponse represents a successful close response
// swagger:model CloseResponse
type CloseResponse struct {
	// Success message
	// default: Listing closed
	Message string `json:"message"`

	// Winner of the auction, absent when it closed with no bids
	WinnerID *uuid.UUID `json:"winner_id,omitempty"`

	// Final price at close time
	FinalPrice float64 `json:"final_price"`
}

// CloseErrorResponse represents an error response for closing
// swagger:model CloseErrorResponse
type CloseErrorResponse struct {
	// Error message
	// default: Only the owner may close the listing
	Error string `json:"error"`
}

// NewCloseHandler returns an HTTP handler for closing a listing.
// @Summary Close a listing
// @Description Ends the auction for a listing. Only the owner may close; the winner is the highest bidder at the moment of closing, or nobody if no bids exist. The transition is one-way.
// @Tags auction
// @Produce json
// @Param listingID path string true "Listing ID"
// @Success 200 {object} handlers.CloseResponse "Listing closed"
// @Failure 400 {object} handlers.CloseErrorResponse "Listing already closed"
// @Failure 401 {object} handlers.CloseErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.CloseErrorResponse "Requester is not the owner"
// @Failure 404 {object} handlers.CloseErrorResponse "Listing not found"
// @Failure 409 {object} handlers.CloseErrorResponse "Concurrent modification, retry"
// @Router /listings/{listingID}/close [post]
// @Security BearerAuth
func NewCloseHandler(
	svc ListingCloser,
	tokenGetter CloseTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CloseErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CloseErrorResponse{Error: "Unauthorized"})
			return
		}

		listingID, err := uuid.Parse(chi.URLParam(r, "listingID"))
		if err != nil {
			logger.Log.Warnw("invalid listing ID", "error", err)
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(CloseErrorResponse{Error: "Listing not found"})
			return
		}

		listing, err := svc.Close(ctx, listingID, claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrListingNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(CloseErrorResponse{Error: "Listing not found"})
			case errors.Is(err, services.ErrNotOwner):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(CloseErrorResponse{Error: "Only the owner may close the listing"})
			case errors.Is(err, services.ErrListingInactive):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CloseErrorResponse{Error: "The auction is already closed"})
			case errors.Is(err, services.ErrConcurrentModification):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(CloseErrorResponse{Error: "Listing was modified concurrently, retry"})
			default:
				logger.Log.Errorw("failed to close listing", "listingID", listingID, "userID", claims.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CloseErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CloseResponse{
			Message:    "Listing closed",
			WinnerID:   listing.WinnerID,
			FinalPrice: listing.Price,
		})
	}
}
