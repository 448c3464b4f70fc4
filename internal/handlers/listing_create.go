package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-auction-commerce/internal/jwt"
	"github.com/sbilibin2017/gw-auction-commerce/internal/logger"
	"github.com/sbilibin2017/gw-auction-commerce/internal/models"
	"github.com/sbilibin2017/gw-auction-commerce/internal/services"
)

// CreateTokener defines only the methods needed by this handler.
type CreateTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// ListingCreator defines the interface that the service must implement.
type ListingCreator interface {
	Create(ctx context.Context, ownerID uuid.UUID, name, description string, price float64, photoURL *string, categoryID *uuid.UUID) (*models.ListingDB, error)
}

// ListingCreateRequest represents the JSON body for creating a listing
// swagger:model ListingCreateRequest
type ListingCreateRequest struct {
	// Listing title
	// required: true
	// default: Antique clock
	Name string `json:"name"`

	// Listing description
	// required: true
	// default: A very old clock
	Description string `json:"description"`

	// Initial asking price
	// required: true
	// default: 100.0
	Price float64 `json:"price"`

	// Optional photo URL
	PhotoURL *string `json:"photo_url"`

	// Optional category ID
	CategoryID *uuid.UUID `json:"category_id"`
}

// ListingCreateResponse represents a successful listing creation response
// swagger:model ListingCreateResponse
type ListingCreateResponse struct {
	// Success message
	// default: Listing created
	Message string `json:"message"`

	// The created listing
	Listing models.ListingDB `json:"listing"`
}

// ListingCreateErrorResponse represents an error response for listing creation
// swagger:model ListingCreateErrorResponse
type ListingCreateErrorResponse struct {
	// Error message
	// default: Invalid listing
	Error string `json:"error"`
}

// NewListingCreateHandler returns an HTTP handler for creating a listing.
// @Summary Create a listing
// @Description Creates a new active listing owned by the authenticated user, with no winner and the given asking price.
// @Tags auction
// @Accept json
// @Produce json
// @Param request body handlers.ListingCreateRequest true "Listing Create Request"
// @Success 201 {object} handlers.ListingCreateResponse "Listing created"
// @Failure 400 {object} handlers.ListingCreateErrorResponse "Invalid listing"
// @Failure 401 {object} handlers.ListingCreateErrorResponse "Unauthorized"
// @Router /listings [post]
// @Security BearerAuth
func NewListingCreateHandler(
	svc ListingCreator,
	tokenGetter CreateTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ListingCreateErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ListingCreateErrorResponse{Error: "Unauthorized"})
			return
		}

		var req ListingCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode listing create request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ListingCreateErrorResponse{Error: "Invalid request body"})
			return
		}

		listing, err := svc.Create(ctx, claims.UserID, req.Name, req.Description, req.Price, req.PhotoURL, req.CategoryID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidListing):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ListingCreateErrorResponse{Error: "Listing name and description are required"})
			case errors.Is(err, services.ErrInvalidAmount):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ListingCreateErrorResponse{Error: "Invalid price"})
			default:
				logger.Log.Errorw("failed to create listing", "ownerID", claims.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ListingCreateErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(ListingCreateResponse{
			Message: "Listing created",
			Listing: *listing,
		})
	}
}
