package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-auction-commerce/internal/logger"
	"github.com/sbilibin2017/gw-auction-commerce/internal/models"
)

// Error variables
var (
	ErrInvalidCategory  = errors.New("category name is required")
	ErrCategoryNotFound = errors.New("category not found")
)

// CategoryReader defines category read operations.
type CategoryReader interface {
	List(ctx context.Context) ([]models.CategoryDB, error) // All categories, ordered by name
}

// CategoryWriter defines category write operations.
type CategoryWriter interface {
	Save(ctx context.Context, categoryID uuid.UUID, name string) error // Inserts a category
	Delete(ctx context.Context, categoryID uuid.UUID) (bool, error)    // Deletes, reporting whether a row existed
}

// CategoryService manages the listing category taxonomy.
type CategoryService struct {
	reader CategoryReader
	writer CategoryWriter
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(reader CategoryReader, writer CategoryWriter) *CategoryService {
	return &CategoryService{reader: reader, writer: writer}
}

// List returns all categories.
func (s *CategoryService) List(ctx context.Context) ([]models.CategoryDB, error) {
	categories, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list categories", "error", err)
		return nil, err
	}
	return categories, nil
}

// Create creates a new category.
func (s *CategoryService) Create(ctx context.Context, name string) (*models.CategoryDB, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidCategory
	}

	category := models.CategoryDB{CategoryID: uuid.New(), Name: name}
	if err := s.writer.Save(ctx, category.CategoryID, category.Name); err != nil {
		logger.Log.Errorw("failed to save category", "name", name, "error", err)
		return nil, err
	}
	return &category, nil
}

// Delete removes a category. Listings referencing it lose their category but
// are never deleted along with it.
func (s *CategoryService) Delete(ctx context.Context, categoryID uuid.UUID) error {
	deleted, err := s.writer.Delete(ctx, categoryID)
	if err != nil {
		logger.Log.Errorw("failed to delete category", "categoryID", categoryID, "error", err)
		return err
	}
	if !deleted {
		return ErrCategoryNotFound
	}
	return nil
}
