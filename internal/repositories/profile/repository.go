// Package profile provides the interface for profile persistence
package profile

//go:generate mockgen -destination=mock/mock_repository.go -package=profilemock github.com/tavernkeep/companion-api/internal/repositories/profile Repository

import (
	"context"

	"github.com/tavernkeep/companion-api/internal/entities"
)

// Repository defines the interface for profile persistence
type Repository interface {
	// Create creates a new profile
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a profile with the same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a profile by ID
	// Returns errors.NotFound if the profile doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing profile record
	// Returns errors.NotFound if the profile doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete deletes a profile by ID
	// Returns errors.NotFound if the profile doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List retrieves every profile, for the admin directory
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a profile
type CreateInput struct {
	Profile *entities.Profile
}

// CreateOutput defines the output for creating a profile
type CreateOutput struct {
	Profile *entities.Profile
}

// GetInput defines the input for getting a profile
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a profile
type GetOutput struct {
	Profile *entities.Profile
}

// UpdateInput defines the input for updating a profile
type UpdateInput struct {
	Profile *entities.Profile
}

// UpdateOutput defines the output for updating a profile
type UpdateOutput struct {
	Profile *entities.Profile
}

// DeleteInput defines the input for deleting a profile
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a profile
type DeleteOutput struct{}

// ListInput defines the input for listing profiles
type ListInput struct{}

// ListOutput defines the output for listing profiles
type ListOutput struct {
	Profiles []*entities.Profile
}
