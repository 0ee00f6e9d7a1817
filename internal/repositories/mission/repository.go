// Package mission provides the interface for mission persistence
package mission

import (
	"context"

	"github.com/tavernkeep/companion-api/internal/entities"
)

// Repository defines the interface for mission persistence
type Repository interface {
	// Create creates a new mission
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a mission by ID
	// Returns errors.NotFound if the mission doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing mission record
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete deletes a mission by ID
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List retrieves every mission
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a mission
type CreateInput struct {
	Mission *entities.Mission
}

// CreateOutput defines the output for creating a mission
type CreateOutput struct {
	Mission *entities.Mission
}

// GetInput defines the input for getting a mission
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a mission
type GetOutput struct {
	Mission *entities.Mission
}

// UpdateInput defines the input for updating a mission
type UpdateInput struct {
	Mission *entities.Mission
}

// UpdateOutput defines the output for updating a mission
type UpdateOutput struct {
	Mission *entities.Mission
}

// DeleteInput defines the input for deleting a mission
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a mission
type DeleteOutput struct{}

// ListInput defines the input for listing missions
type ListInput struct{}

// ListOutput defines the output for listing missions
type ListOutput struct {
	Missions []*entities.Mission
}
