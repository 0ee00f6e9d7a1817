// Package npc provides the interface for NPC persistence
package npc

import (
	"context"

	"github.com/tavernkeep/companion-api/internal/entities"
)

// Repository defines the interface for NPC persistence
type Repository interface {
	// Create creates a new NPC
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves an NPC by ID
	// Returns errors.NotFound if the NPC doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing NPC record
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete deletes an NPC by ID
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List retrieves every NPC
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating an NPC
type CreateInput struct {
	NPC *entities.NPC
}

// CreateOutput defines the output for creating an NPC
type CreateOutput struct {
	NPC *entities.NPC
}

// GetInput defines the input for getting an NPC
type GetInput struct {
	ID int64
}

// GetOutput defines the output for getting an NPC
type GetOutput struct {
	NPC *entities.NPC
}

// UpdateInput defines the input for updating an NPC
type UpdateInput struct {
	NPC *entities.NPC
}

// UpdateOutput defines the output for updating an NPC
type UpdateOutput struct {
	NPC *entities.NPC
}

// DeleteInput defines the input for deleting an NPC
type DeleteInput struct {
	ID int64
}

// DeleteOutput defines the output for deleting an NPC
type DeleteOutput struct{}

// ListInput defines the input for listing NPCs
type ListInput struct{}

// ListOutput defines the output for listing NPCs
type ListOutput struct {
	NPCs []*entities.NPC
}
