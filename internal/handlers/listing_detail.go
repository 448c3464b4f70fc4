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

// DetailTokener defines only the methods needed by this handler.
type DetailTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// ListingViewer defines the interface that the service must implement.
type ListingViewer interface {
	View(ctx context.Context, listingID uuid.UUID, viewerID *uuid.UUID) (*models.ListingView, error)
}

// CommentLister defines the comment log read operation used for display.
type CommentLister interface {
	List(ctx context.Context, listingID uuid.UUID) ([]models.CommentDB, error)
}

// ListingDetailResponse represents the listing detail page state
// swagger:model ListingDetailResponse
type ListingDetailResponse struct {
	// Derived listing view state
	View models.ListingView `json:"view"`

	// Comments for the listing, newest first
	Comments []models.CommentDB `json:"comments"`
}

// ListingDetailErrorResponse represents an error response for listing detail
// swagger:model ListingDetailErrorResponse
type ListingDetailErrorResponse struct {
	// Error message
	// default: Listing not found
	Error string `json:"error"`
}

// NewListingDetailHandler returns an HTTP handler for the listing detail view.
// The route is public; when a valid token is supplied the response carries
// the viewer's privilege flags, otherwise all flags are false.
// @Summary Listing detail
// @Description Returns the listing with its derived state: current price, bid count, highest bidder, owner/high-bidder/winner/watchlist flags for the viewer, and the comment log newest first.
// @Tags auction
// @Produce json
// @Param listingID path string true "Listing ID"
// @Success 200 {object} handlers.ListingDetailResponse "Listing detail"
// @Failure 404 {object} handlers.ListingDetailErrorResponse "Listing not found"
// @Router /listings/{listingID} [get]
func NewListingDetailHandler(
	svc ListingViewer,
	comments CommentLister,
	tokenGetter DetailTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		// Anonymous viewers are fine here; privilege flags just stay false.
		var viewerID *uuid.UUID
		if tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r); err == nil {
			if claims, err := tokenGetter.GetClaims(ctx, tokenStr); err == nil {
				viewerID = &claims.UserID
			}
		}

		listingID, err := uuid.Parse(chi.URLParam(r, "listingID"))
		if err != nil {
			logger.Log.Warnw("invalid listing ID", "error", err)
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ListingDetailErrorResponse{Error: "Listing not found"})
			return
		}

		view, err := svc.View(ctx, listingID, viewerID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrListingNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ListingDetailErrorResponse{Error: "Listing not found"})
			default:
				logger.Log.Errorw("failed to build listing view", "listingID", listingID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ListingDetailErrorResponse{Error: "Internal server error"})
			}
			return
		}

		commentList, err := comments.List(ctx, listingID)
		if err != nil {
			logger.Log.Errorw("failed to list comments", "listingID", listingID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListingDetailErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListingDetailResponse{
			View:     *view,
			Comments: commentList,
		})
	}
}
