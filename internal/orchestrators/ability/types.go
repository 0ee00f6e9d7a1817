package ability

import (
	"github.com/tavernkeep/companion-api/internal/entities"
)

// ListEligibleInput defines the input for listing a profile's eligible abilities
type ListEligibleInput struct {
	ProfileID string
}

// ListEligibleOutput defines the output for listing eligible abilities
type ListEligibleOutput struct {
	Abilities []*entities.Ability
}

// ListUsableInput defines the input for listing a profile's usable abilities
type ListUsableInput struct {
	ProfileID string
}

// ListUsableOutput defines the output for listing usable abilities. Each
// ability carries the profile's remaining-use counter, not the catalog
// template default.
type ListUsableOutput struct {
	Abilities []*entities.Ability
}

// IncrementUsesInput defines the input for restoring one use of an ability
type IncrementUsesInput struct {
	ProfileID string
	AbilityID string
}

// IncrementUsesOutput defines the output for restoring one use.
// Unchanged is true when the counter was already at the ability's total.
type IncrementUsesOutput struct {
	RemainingUses int32
	Unchanged     bool
}

// DecrementUsesInput defines the input for spending one use of an ability
type DecrementUsesInput struct {
	ProfileID string
	AbilityID string
}

// DecrementUsesOutput defines the output for spending one use.
// Unchanged is true when the counter was already exhausted.
type DecrementUsesOutput struct {
	RemainingUses int32
	Unchanged     bool
}

// SetGrantsInput defines the input for recomputing an ability's grants.
// ProfileIDs is the complete new set of holders; profiles not listed lose
// the ability.
type SetGrantsInput struct {
	AbilityID  string
	ProfileIDs []string
}

// SetGrantsOutput defines the output for recomputing an ability's grants
type SetGrantsOutput struct {
	Grants []*entities.AbilityGrant
}
