// Package enemy provides the interface for enemy persistence
package enemy

import (
	"context"

	"github.com/tavernkeep/companion-api/internal/entities"
)

// Repository defines the interface for enemy persistence
type Repository interface {
	// Create creates a new enemy
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves an enemy by ID
	// Returns errors.NotFound if the enemy doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing enemy record
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete deletes an enemy by ID
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List retrieves every enemy
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating an enemy
type CreateInput struct {
	Enemy *entities.Enemy
}

// CreateOutput defines the output for creating an enemy
type CreateOutput struct {
	Enemy *entities.Enemy
}

// GetInput defines the input for getting an enemy
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an enemy
type GetOutput struct {
	Enemy *entities.Enemy
}

// UpdateInput defines the input for updating an enemy
type UpdateInput struct {
	Enemy *entities.Enemy
}

// UpdateOutput defines the output for updating an enemy
type UpdateOutput struct {
	Enemy *entities.Enemy
}

// DeleteInput defines the input for deleting an enemy
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting an enemy
type DeleteOutput struct{}

// ListInput defines the input for listing enemies
type ListInput struct{}

// ListOutput defines the output for listing enemies
type ListOutput struct {
	Enemies []*entities.Enemy
}
