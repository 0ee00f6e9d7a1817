// Package item provides the interface for inventory item persistence
package item

import (
	"context"

	"github.com/tavernkeep/companion-api/internal/entities"
)

// Repository defines the interface for item persistence. Items are keyed
// by their numeric ID and indexed by owning profile.
type Repository interface {
	// Create creates a new item
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves an item by ID
	// Returns errors.NotFound if the item doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete deletes an item by ID
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByProfile retrieves every item owned by a profile
	ListByProfile(ctx context.Context, input ListByProfileInput) (*ListByProfileOutput, error)

	// DeleteByProfile removes every item owned by a profile, used by the
	// user-deletion cascade
	DeleteByProfile(ctx context.Context, input DeleteByProfileInput) (*DeleteByProfileOutput, error)
}

// CreateInput defines the input for creating an item
type CreateInput struct {
	Item *entities.Item
}

// CreateOutput defines the output for creating an item
type CreateOutput struct {
	Item *entities.Item
}

// GetInput defines the input for getting an item
type GetInput struct {
	ID int64
}

// GetOutput defines the output for getting an item
type GetOutput struct {
	Item *entities.Item
}

// DeleteInput defines the input for deleting an item
type DeleteInput struct {
	ID int64
}

// DeleteOutput defines the output for deleting an item
type DeleteOutput struct{}

// ListByProfileInput defines the input for listing a profile's items
type ListByProfileInput struct {
	ProfileID string
}

// ListByProfileOutput defines the output for listing a profile's items
type ListByProfileOutput struct {
	Items []*entities.Item
}

// DeleteByProfileInput defines the input for deleting a profile's items
type DeleteByProfileInput struct {
	ProfileID string
}

// DeleteByProfileOutput reports how many items were removed
type DeleteByProfileOutput struct {
	Deleted int
}
