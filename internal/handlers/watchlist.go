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
	"github.com/sbilibin2017/gw-auction-commerce/internal/services"
)

// WatchlistTokener defines only the methods needed by this handler.
type WatchlistTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// WatchlistToggler defines the interface that the service must implement.
type WatchlistToggler interface {
	Toggle(ctx context.Context, userID, listingID uuid.UUID) (bool, error)
}

// WatchlistToggleResponse represents a successful toggle response
// swagger:model WatchlistToggleResponse
type WatchlistToggleResponse struct {
	// Whether the listing is in the watchlist after the toggle
	InWatchlist bool `json:"in_watchlist"`
}

// WatchlistErrorResponse represents an error response for watchlist operations
// swagger:model WatchlistErrorResponse
type WatchlistErrorResponse struct {
	// Error message
	// default: Listing not found
	Error string `json:"error"`
}

// NewWatchlistToggleHandler returns an HTTP handler that flips a listing's
// membership in the authenticated user's watchlist.
// @Summary Toggle watchlist
// @Description Adds the listing to the user's watchlist if absent, removes it otherwise, and returns the new membership. Works on closed listings too.
// @Tags auction
// @Produce json
// @Param listingID path string true "Listing ID"
// @Success 200 {object} handlers.WatchlistToggleResponse "New membership state"
// @Failure 401 {object} handlers.WatchlistErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.WatchlistErrorResponse "Listing not found"
// @Router /listings/{listingID}/watchlist [post]
// @Security BearerAuth
func NewWatchlistToggleHandler(
	svc WatchlistToggler,
	tokenGetter WatchlistTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(WatchlistErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(WatchlistErrorResponse{Error: "Unauthorized"})
			return
		}

		listingID, err := uuid.Parse(chi.URLParam(r, "listingID"))
		if err != nil {
			logger.Log.Warnw("invalid listing ID", "error", err)
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(WatchlistErrorResponse{Error: "Listing not found"})
			return
		}

		inWatchlist, err := svc.Toggle(ctx, claims.UserID, listingID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrListingNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(WatchlistErrorResponse{Error: "Listing not found"})
			default:
				logger.Log.Errorw("failed to toggle watchlist", "listingID", listingID, "userID", claims.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(WatchlistErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WatchlistToggleResponse{InWatchlist: inWatchlist})
	}
}
