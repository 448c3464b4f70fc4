package models

import "github.com/google/uuid"

// CategoryDB represents a listing category in the database
type CategoryDB struct {
	CategoryID uuid.UUID `json:"category_id" db:"category_id"` // Primary key
	Name       string    `json:"name" db:"name"`               // Category name
}
