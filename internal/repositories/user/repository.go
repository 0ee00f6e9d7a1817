// Package user provides the interface for the denormalized user directory
package user

import (
	"context"

	"github.com/tavernkeep/companion-api/internal/entities"
)

// Repository defines the interface for the user directory. Records mirror
// the identity provider; Put upserts on auth events.
type Repository interface {
	// Put creates or replaces a directory entry
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Get retrieves a directory entry by user ID
	// Returns errors.NotFound if the user doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a directory entry
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List retrieves every directory entry, for the admin listing
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// PutInput defines the input for storing a user
type PutInput struct {
	User *entities.User
}

// PutOutput defines the output for storing a user
type PutOutput struct {
	User *entities.User
}

// GetInput defines the input for getting a user
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a user
type GetOutput struct {
	User *entities.User
}

// DeleteInput defines the input for deleting a user
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a user
type DeleteOutput struct{}

// ListInput defines the input for listing users
type ListInput struct{}

// ListOutput defines the output for listing users
type ListOutput struct {
	Users []*entities.User
}
