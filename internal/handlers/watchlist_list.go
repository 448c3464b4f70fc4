package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-auction-commerce/internal/jwt"
	"github.com/sbilibin2017/gw-auction-commerce/internal/logger"
	"github.com/sbilibin2017/gw-auction-commerce/internal/models"
)

// WatchlistListTokener defines only the methods needed by this handler.
type WatchlistListTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// WatchlistLister defines the interface that the service must implement.
type WatchlistLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.ListingDB, error)
}

// WatchlistListResponse represents the user's watchlist
// swagger:model WatchlistListResponse
type WatchlistListResponse struct {
	// Watched listings, most recently watched first
	Listings []models.ListingDB `json:"listings"`
}

// NewWatchlistListHandler returns an HTTP handler for the authenticated
// user's watchlist.
// @Summary List watchlist
// @Description Returns the listings in the authenticated user's watchlist.
// @Tags auction
// @Produce json
// @Success 200 {object} handlers.WatchlistListResponse "Watched listings"
// @Failure 401 {object} handlers.WatchlistErrorResponse "Unauthorized"
// @Router /watchlist [get]
// @Security BearerAuth
func NewWatchlistListHandler(
	svc WatchlistLister,
	tokenGetter WatchlistListTokener,
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

		listings, err := svc.List(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list watchlist", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(WatchlistErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WatchlistListResponse{Listings: listings})
	}
}
