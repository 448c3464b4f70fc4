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

// CommentTokener defines only the methods needed by this handler.
type CommentTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// CommentAdder defines the interface that the service must implement.
type CommentAdder interface {
	Add(ctx context.Context, listingID, authorID uuid.UUID, body string) (*models.CommentDB, error)
}

// CommentRequest represents the JSON body for adding a comment
// swagger:model CommentRequest
type CommentRequest struct {
	// Comment text, must be non-blank
	// required: true
	// default: Lovely item!
	Body string `json:"body"`
}

// CommentResponse represents a successful comment response
// swagger:model CommentResponse
type CommentResponse struct {
	// Success message
	// default: Comment added
	Message string `json:"message"`

	// The created comment
	Comment models.CommentDB `json:"comment"`
}

// CommentErrorResponse represents an error response for commenting
// swagger:model CommentErrorResponse
type CommentErrorResponse struct {
	// Error message
	// default: Comment body is empty
	Error string `json:"error"`
}

// NewCommentHandler returns an HTTP handler for adding a comment to a listing.
// @Summary Add a comment
// @Description Appends an immutable comment to the listing's comment log. Closed listings still accept comments.
// @Tags auction
// @Accept json
// @Produce json
// @Param listingID path string true "Listing ID"
// @Param request body handlers.CommentRequest true "Comment Request"
// @Success 201 {object} handlers.CommentResponse "Comment added"
// @Failure 400 {object} handlers.CommentErrorResponse "Comment body is empty"
// @Failure 401 {object} handlers.CommentErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.CommentErrorResponse "Listing not found"
// @Router /listings/{listingID}/comments [post]
// @Security BearerAuth
func NewCommentHandler(
	svc CommentAdder,
	tokenGetter CommentTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CommentErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CommentErrorResponse{Error: "Unauthorized"})
			return
		}

		listingID, err := uuid.Parse(chi.URLParam(r, "listingID"))
		if err != nil {
			logger.Log.Warnw("invalid listing ID", "error", err)
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(CommentErrorResponse{Error: "Listing not found"})
			return
		}

		var req CommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode comment request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CommentErrorResponse{Error: "Invalid request body"})
			return
		}

		comment, err := svc.Add(ctx, listingID, claims.UserID, req.Body)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyComment):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CommentErrorResponse{Error: "Comment body is empty"})
			case errors.Is(err, services.ErrListingNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(CommentErrorResponse{Error: "Listing not found"})
			default:
				logger.Log.Errorw("failed to add comment", "listingID", listingID, "userID", claims.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CommentErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CommentResponse{
			Message: "Comment added",
			Comment: *comment,
		})
	}
}
