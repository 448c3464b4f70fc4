package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-auction-commerce/internal/logger"
	"github.com/sbilibin2017/gw-auction-commerce/internal/models"
	"github.com/sbilibin2017/gw-auction-commerce/internal/services"
)

// CategoryManager defines the interface that the service must implement.
type CategoryManager interface {
	List(ctx context.Context) ([]models.CategoryDB, error)
	Create(ctx context.Context, name string) (*models.CategoryDB, error)
	Delete(ctx context.Context, categoryID uuid.UUID) error
}

// CategoryCreateRequest represents the JSON body for creating a category
// swagger:model CategoryCreateRequest
type CategoryCreateRequest struct {
	// Category name
	// required: true
	// default: Electronics
	Name string `json:"name"`
}

// CategoryListResponse represents the category index
// swagger:model CategoryListResponse
type CategoryListResponse struct {
	// All categories ordered by name
	Categories []models.CategoryDB `json:"categories"`
}

// CategoryErrorResponse represents an error response for category operations
// swagger:model CategoryErrorResponse
type CategoryErrorResponse struct {
	// Error message
	// default: Category not found
	Error string `json:"error"`
}

// NewCategoryListHandler returns an HTTP handler for the category index.
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {object} handlers.CategoryListResponse "Categories"
// @Failure 500 {object} handlers.CategoryErrorResponse "Internal server error"
// @Router /categories [get]
func NewCategoryListHandler(svc CategoryManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list categories", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CategoryErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CategoryListResponse{Categories: categories})
	}
}

// NewCategoryCreateHandler returns an HTTP handler for creating a category.
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param request body handlers.CategoryCreateRequest true "Category Create Request"
// @Success 201 {object} models.CategoryDB "Category created"
// @Failure 400 {object} handlers.CategoryErrorResponse "Category name is required"
// @Router /categories [post]
// @Security BearerAuth
func NewCategoryCreateHandler(svc CategoryManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CategoryCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CategoryErrorResponse{Error: "Invalid request body"})
			return
		}

		category, err := svc.Create(r.Context(), req.Name)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCategory):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CategoryErrorResponse{Error: "Category name is required"})
			default:
				logger.Log.Errorw("failed to create category", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CategoryErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(category)
	}
}

// NewCategoryDeleteHandler returns an HTTP handler for deleting a category.
// Listings referencing the category keep existing with no category.
// @Summary Delete a category
// @Tags categories
// @Produce json
// @Param categoryID path string true "Category ID"
// @Success 204 "Category deleted"
// @Failure 404 {object} handlers.CategoryErrorResponse "Category not found"
// @Router /categories/{categoryID} [delete]
// @Security BearerAuth
func NewCategoryDeleteHandler(svc CategoryManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := uuid.Parse(chi.URLParam(r, "categoryID"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(CategoryErrorResponse{Error: "Category not found"})
			return
		}

		if err := svc.Delete(r.Context(), categoryID); err != nil {
			switch {
			case errors.Is(err, services.ErrCategoryNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(CategoryErrorResponse{Error: "Category not found"})
			default:
				logger.Log.Errorw("failed to delete category", "categoryID", categoryID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CategoryErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
