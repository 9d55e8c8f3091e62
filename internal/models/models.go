package models

import (
	"github.com/google/uuid"
)

// Category is one bucket of the categorization output. The ID is the stable
// handle used internally while a partition pass is running; Name and
// Description are display strings and carry the ancestry path once a category
// has been produced by subdivision ("Electronics > Audio").
type Category struct {
	ID          uuid.UUID `json:"-"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Items       []string  `json:"items"`
}

// NewCategory returns an empty category with a fresh ID.
func NewCategory(name, description string) *Category {
	return &Category{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Items:       []string{},
	}
}
