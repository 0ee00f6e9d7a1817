// Package ability provides the interface for ability catalog persistence
package ability

//go:generate mockgen -destination=mock/mock_repository.go -package=abilitymock github.com/tavernkeep/companion-api/internal/repositories/ability Repository

import (
	"context"

	"github.com/tavernkeep/companion-api/internal/entities"
)

// Repository defines the interface for ability catalog persistence. The
// catalog holds global definitions; per-profile use counters live in the
// grant repository.
type Repository interface {
	// Create creates a new catalog entry
	// Returns errors.AlreadyExists if an ability with the same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves an ability by ID
	// Returns errors.NotFound if the ability doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing catalog entry
	// Returns errors.NotFound if the ability doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete deletes an ability by ID
	// Returns errors.NotFound if the ability doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List retrieves the full catalog
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating an ability
type CreateInput struct {
	Ability *entities.Ability
}

// CreateOutput defines the output for creating an ability
type CreateOutput struct {
	Ability *entities.Ability
}

// GetInput defines the input for getting an ability
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an ability
type GetOutput struct {
	Ability *entities.Ability
}

// UpdateInput defines the input for updating an ability
type UpdateInput struct {
	Ability *entities.Ability
}

// UpdateOutput defines the output for updating an ability
type UpdateOutput struct {
	Ability *entities.Ability
}

// DeleteInput defines the input for deleting an ability
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting an ability
type DeleteOutput struct{}

// ListInput defines the input for listing the catalog
type ListInput struct{}

// ListOutput defines the output for listing the catalog
type ListOutput struct {
	Abilities []*entities.Ability
}
