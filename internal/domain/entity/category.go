package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies transactions (materials, salary, delivery, ...).
// Category names are unique across the ledger.
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(name, description string) *Category {
	return &Category{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
	}
}
