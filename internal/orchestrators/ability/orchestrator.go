// Package ability implements the ability tracker, the orchestrator that
// decides which catalog abilities a profile can see and spend.
package ability

//go:generate mockgen -destination=mock/mock_service.go -package=abilitymock github.com/tavernkeep/companion-api/internal/orchestrators/ability Service

import (
	"context"
	"log/slog"
	"sort"

	"github.com/tavernkeep/companion-api/internal/entities"
	"github.com/tavernkeep/companion-api/internal/errors"
	abilityrepo "github.com/tavernkeep/companion-api/internal/repositories/ability"
	"github.com/tavernkeep/companion-api/internal/repositories/grant"
	profilerepo "github.com/tavernkeep/companion-api/internal/repositories/profile"
)

// Service defines the interface for ability tracking operations
type Service interface {
	// ListEligible returns the catalog abilities a profile meets the gates
	// for, ordered by level ascending
	ListEligible(ctx context.Context, input *ListEligibleInput) (*ListEligibleOutput, error)

	// ListUsable returns the granted abilities a profile can invoke, with
	// the profile's own remaining-use counters, ordered by level ascending
	ListUsable(ctx context.Context, input *ListUsableInput) (*ListUsableOutput, error)

	// IncrementUses restores one use of a granted ability, clamped at the
	// ability's total
	IncrementUses(ctx context.Context, input *IncrementUsesInput) (*IncrementUsesOutput, error)

	// DecrementUses spends one use of a granted ability, clamped at zero
	DecrementUses(ctx context.Context, input *DecrementUsesInput) (*DecrementUsesOutput, error)

	// SetGrants replaces the set of profiles holding an ability, resetting
	// each new holder's counter to the ability's total
	SetGrants(ctx context.Context, input *SetGrantsInput) (*SetGrantsOutput, error)
}

// Config holds the dependencies for the ability orchestrator
type Config struct {
	ProfileRepo profilerepo.Repository
	AbilityRepo abilityrepo.Repository
	GrantRepo   grant.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ProfileRepo == nil {
		vb.RequiredField("ProfileRepo")
	}
	if c.AbilityRepo == nil {
		vb.RequiredField("AbilityRepo")
	}
	if c.GrantRepo == nil {
		vb.RequiredField("GrantRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	profileRepo profilerepo.Repository
	abilityRepo abilityrepo.Repository
	grantRepo   grant.Repository
}

// NewOrchestrator creates a new ability orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		profileRepo: cfg.ProfileRepo,
		abilityRepo: cfg.AbilityRepo,
		grantRepo:   cfg.GrantRepo,
	}, nil
}

func (o *orchestrator) ListEligible(ctx context.Context, input *ListEligibleInput) (*ListEligibleOutput, error) {
	if input == nil || input.ProfileID == "" {
		return nil, errors.InvalidArgument("profile ID is required")
	}

	profileOutput, err := o.profileRepo.Get(ctx, profilerepo.GetInput{ID: input.ProfileID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get profile %s", input.ProfileID)
	}

	listOutput, err := o.abilityRepo.List(ctx, abilityrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ability catalog")
	}

	eligible := make([]*entities.Ability, 0, len(listOutput.Abilities))
	for _, a := range listOutput.Abilities {
		if a.EligibleFor(profileOutput.Profile) {
			eligible = append(eligible, a)
		}
	}
	sortByLevel(eligible)

	return &ListEligibleOutput{Abilities: eligible}, nil
}

func (o *orchestrator) ListUsable(ctx context.Context, input *ListUsableInput) (*ListUsableOutput, error) {
	if input == nil || input.ProfileID == "" {
		return nil, errors.InvalidArgument("profile ID is required")
	}

	profileOutput, err := o.profileRepo.Get(ctx, profilerepo.GetInput{ID: input.ProfileID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get profile %s", input.ProfileID)
	}

	grantsOutput, err := o.grantRepo.ListByProfile(ctx, grant.ListByProfileInput{ProfileID: input.ProfileID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list grants for profile %s", input.ProfileID)
	}

	usable := make([]*entities.Ability, 0, len(grantsOutput.Grants))
	for _, g := range grantsOutput.Grants {
		abilityOutput, err := o.abilityRepo.Get(ctx, abilityrepo.GetInput{ID: g.AbilityID})
		if err != nil {
			if errors.IsNotFound(err) {
				// Grant outlived its catalog entry, skip it
				slog.WarnContext(ctx, "grant references missing ability",
					"profile_id", g.ProfileID,
					"hability_id", g.AbilityID,
				)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get ability %s", g.AbilityID)
		}

		a := abilityOutput.Ability
		if !a.EligibleFor(profileOutput.Profile) {
			continue
		}

		// The grant counter is authoritative, not the catalog template
		a.CurrentUses = g.CurrentUses
		usable = append(usable, a)
	}
	sortByLevel(usable)

	return &ListUsableOutput{Abilities: usable}, nil
}

func (o *orchestrator) IncrementUses(ctx context.Context, input *IncrementUsesInput) (*IncrementUsesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validatePair(input.ProfileID, input.AbilityID); err != nil {
		return nil, err
	}

	g, total, err := o.getGrantAndTotal(ctx, input.ProfileID, input.AbilityID)
	if err != nil {
		return nil, err
	}

	if g.CurrentUses >= total {
		return &IncrementUsesOutput{RemainingUses: g.CurrentUses, Unchanged: true}, nil
	}

	g.CurrentUses++
	if _, err := o.grantRepo.Put(ctx, grant.PutInput{Grant: g}); err != nil {
		return nil, errors.Wrap(err, "failed to persist grant")
	}

	return &IncrementUsesOutput{RemainingUses: g.CurrentUses}, nil
}

func (o *orchestrator) DecrementUses(ctx context.Context, input *DecrementUsesInput) (*DecrementUsesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validatePair(input.ProfileID, input.AbilityID); err != nil {
		return nil, err
	}

	g, _, err := o.getGrantAndTotal(ctx, input.ProfileID, input.AbilityID)
	if err != nil {
		return nil, err
	}

	if g.CurrentUses <= 0 {
		return &DecrementUsesOutput{RemainingUses: g.CurrentUses, Unchanged: true}, nil
	}

	g.CurrentUses--
	if _, err := o.grantRepo.Put(ctx, grant.PutInput{Grant: g}); err != nil {
		return nil, errors.Wrap(err, "failed to persist grant")
	}

	return &DecrementUsesOutput{RemainingUses: g.CurrentUses}, nil
}

func (o *orchestrator) SetGrants(ctx context.Context, input *SetGrantsInput) (*SetGrantsOutput, error) {
	if input == nil || input.AbilityID == "" {
		return nil, errors.InvalidArgument("ability ID is required")
	}

	abilityOutput, err := o.abilityRepo.Get(ctx, abilityrepo.GetInput{ID: input.AbilityID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get ability %s", input.AbilityID)
	}

	if _, err := o.grantRepo.DeleteByAbility(ctx, grant.DeleteByAbilityInput{AbilityID: input.AbilityID}); err != nil {
		return nil, errors.Wrapf(err, "failed to clear grants for ability %s", input.AbilityID)
	}

	grants := make([]*entities.AbilityGrant, 0, len(input.ProfileIDs))
	for _, profileID := range input.ProfileIDs {
		g := &entities.AbilityGrant{
			ProfileID:   profileID,
			AbilityID:   input.AbilityID,
			CurrentUses: abilityOutput.Ability.TotalUses,
		}
		if _, err := o.grantRepo.Put(ctx, grant.PutInput{Grant: g}); err != nil {
			return nil, errors.Wrapf(err, "failed to grant ability %s to profile %s", input.AbilityID, profileID)
		}
		grants = append(grants, g)
	}

	return &SetGrantsOutput{Grants: grants}, nil
}

// getGrantAndTotal loads the grant record and the catalog total it is
// clamped against
func (o *orchestrator) getGrantAndTotal(ctx context.Context, profileID, abilityID string) (*entities.AbilityGrant, int32, error) {
	grantOutput, err := o.grantRepo.Get(ctx, grant.GetInput{ProfileID: profileID, AbilityID: abilityID})
	if err != nil {
		return nil, 0, errors.Wrapf(err, "failed to get grant for profile %s", profileID)
	}

	abilityOutput, err := o.abilityRepo.Get(ctx, abilityrepo.GetInput{ID: abilityID})
	if err != nil {
		return nil, 0, errors.Wrapf(err, "failed to get ability %s", abilityID)
	}

	return grantOutput.Grant, abilityOutput.Ability.TotalUses, nil
}

func validatePair(profileID, abilityID string) error {
	vb := errors.NewValidationBuilder()
	if profileID == "" {
		vb.RequiredField("ProfileID")
	}
	if abilityID == "" {
		vb.RequiredField("AbilityID")
	}
	return vb.Build()
}

func sortByLevel(abilities []*entities.Ability) {
	sort.SliceStable(abilities, func(i, j int) bool {
		return abilities[i].Level < abilities[j].Level
	})
}
