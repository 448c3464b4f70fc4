package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-auction-commerce/internal/logger"
	"github.com/sbilibin2017/gw-auction-commerce/internal/models"
)

// CategoryReadRepository handles category read operations
type CategoryReadRepository struct {
	db *sqlx.DB
}

func NewCategoryReadRepository(db *sqlx.DB) *CategoryReadRepository {
	return &CategoryReadRepository{db: db}
}

// List returns all categories ordered by name.
func (r *CategoryReadRepository) List(ctx context.Context) ([]models.CategoryDB, error) {
	const query = `
		SELECT category_id, name
		FROM categories
		ORDER BY name
	`

	var categories []models.CategoryDB
	err := r.db.SelectContext(ctx, &categories, query)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(categories),
		"error", err,
	)

	return categories, err
}

// CategoryWriteRepository handles category write operations
type CategoryWriteRepository struct {
	db *sqlx.DB
}

func NewCategoryWriteRepository(db *sqlx.DB) *CategoryWriteRepository {
	return &CategoryWriteRepository{db: db}
}

// Save inserts a new category.
func (r *CategoryWriteRepository) Save(ctx context.Context, categoryID uuid.UUID, name string) error {
	query := `
		INSERT INTO categories (category_id, name)
		VALUES ($1, $2)
	`
	args := []any{categoryID, name}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Delete removes a category. Listings referencing it keep existing with a
// NULL category via the ON DELETE SET NULL foreign key.
func (r *CategoryWriteRepository) Delete(ctx context.Context, categoryID uuid.UUID) (bool, error) {
	query := `
		DELETE FROM categories
		WHERE category_id = $1
	`
	args := []any{categoryID}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}
