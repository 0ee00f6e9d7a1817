// Package grant provides persistence for profile-ability associations.
// Each record carries the profile-scoped remaining-use counter; it is the
// single source of truth for how many uses of an ability a profile has
// left, independent of the catalog's template default.
package grant

//go:generate mockgen -destination=mock/mock_repository.go -package=grantmock github.com/tavernkeep/companion-api/internal/repositories/grant Repository

import (
	"context"

	"github.com/tavernkeep/companion-api/internal/entities"
)

// Repository defines the interface for grant persistence
type Repository interface {
	// Put creates or replaces the grant for a (profile, ability) pair.
	// Unconditional overwrite: concurrent writers are not serialized,
	// last write wins at the store level.
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Get retrieves the grant for a (profile, ability) pair
	// Returns errors.NotFound if the profile has no such grant
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListByProfile retrieves every grant held by a profile
	ListByProfile(ctx context.Context, input ListByProfileInput) (*ListByProfileOutput, error)

	// ListByAbility retrieves every grant of an ability across profiles
	ListByAbility(ctx context.Context, input ListByAbilityInput) (*ListByAbilityOutput, error)

	// Delete removes the grant for a (profile, ability) pair
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// DeleteByAbility removes every grant of an ability, used when the
	// admin recomputes associations wholesale
	DeleteByAbility(ctx context.Context, input DeleteByAbilityInput) (*DeleteByAbilityOutput, error)

	// DeleteByProfile removes every grant held by a profile, used by the
	// user-deletion cascade
	DeleteByProfile(ctx context.Context, input DeleteByProfileInput) (*DeleteByProfileOutput, error)
}

// PutInput defines the input for storing a grant
type PutInput struct {
	Grant *entities.AbilityGrant
}

// PutOutput defines the output for storing a grant
type PutOutput struct {
	Grant *entities.AbilityGrant
}

// GetInput defines the input for getting a grant
type GetInput struct {
	ProfileID string
	AbilityID string
}

// GetOutput defines the output for getting a grant
type GetOutput struct {
	Grant *entities.AbilityGrant
}

// ListByProfileInput defines the input for listing a profile's grants
type ListByProfileInput struct {
	ProfileID string
}

// ListByProfileOutput defines the output for listing a profile's grants
type ListByProfileOutput struct {
	Grants []*entities.AbilityGrant
}

// ListByAbilityInput defines the input for listing an ability's grants
type ListByAbilityInput struct {
	AbilityID string
}

// ListByAbilityOutput defines the output for listing an ability's grants
type ListByAbilityOutput struct {
	Grants []*entities.AbilityGrant
}

// DeleteInput defines the input for deleting a grant
type DeleteInput struct {
	ProfileID string
	AbilityID string
}

// DeleteOutput defines the output for deleting a grant
type DeleteOutput struct{}

// DeleteByAbilityInput defines the input for deleting an ability's grants
type DeleteByAbilityInput struct {
	AbilityID string
}

// DeleteByAbilityOutput reports how many grants were removed
type DeleteByAbilityOutput struct {
	Deleted int
}

// DeleteByProfileInput defines the input for deleting a profile's grants
type DeleteByProfileInput struct {
	ProfileID string
}

// DeleteByProfileOutput reports how many grants were removed
type DeleteByProfileOutput struct {
	Deleted int
}
