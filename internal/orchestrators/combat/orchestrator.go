// Package combat implements the damage engine, the orchestrator that turns
// an ability invocation into a die roll and a damage total.
package combat

//go:generate mockgen -destination=mock/mock_service.go -package=combatmock github.com/tavernkeep/companion-api/internal/orchestrators/combat Service

import (
	"context"
	"log/slog"

	"github.com/tavernkeep/companion-api/internal/entities"
	"github.com/tavernkeep/companion-api/internal/errors"
	"github.com/tavernkeep/companion-api/internal/orchestrators/ability"
	"github.com/tavernkeep/companion-api/internal/pkg/dice"
	"github.com/tavernkeep/companion-api/internal/repositories/grant"
	profilerepo "github.com/tavernkeep/companion-api/internal/repositories/profile"
)

const attackDieSides = 6

// Damage bonuses layered on top of roll + attack
const (
	bladedWeaponBonus = 2
	warriorClassBonus = 2
	rogueClassBonus   = 1
)

// Service defines the interface for damage resolution
type Service interface {
	// ResolveAttack spends one use of the ability, rolls the attack die,
	// and computes the damage total for the profile.
	// Returns errors.FailedPrecondition when the ability is exhausted.
	ResolveAttack(ctx context.Context, input *ResolveAttackInput) (*ResolveAttackOutput, error)
}

// Config holds the dependencies for the combat orchestrator
type Config struct {
	ProfileRepo    profilerepo.Repository
	GrantRepo      grant.Repository
	AbilityService ability.Service
	Roller         dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ProfileRepo == nil {
		vb.RequiredField("ProfileRepo")
	}
	if c.GrantRepo == nil {
		vb.RequiredField("GrantRepo")
	}
	if c.AbilityService == nil {
		vb.RequiredField("AbilityService")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

type orchestrator struct {
	profileRepo    profilerepo.Repository
	grantRepo      grant.Repository
	abilityService ability.Service
	roller         dice.Roller
}

// NewOrchestrator creates a new combat orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		profileRepo:    cfg.ProfileRepo,
		grantRepo:      cfg.GrantRepo,
		abilityService: cfg.AbilityService,
		roller:         cfg.Roller,
	}, nil
}

func (o *orchestrator) ResolveAttack(ctx context.Context, input *ResolveAttackInput) (*ResolveAttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	if input.ProfileID == "" {
		vb.RequiredField("ProfileID")
	}
	if input.AbilityID == "" {
		vb.RequiredField("AbilityID")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	profileOutput, err := o.profileRepo.Get(ctx, profilerepo.GetInput{ID: input.ProfileID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get profile %s", input.ProfileID)
	}

	grantOutput, err := o.grantRepo.Get(ctx, grant.GetInput{
		ProfileID: input.ProfileID,
		AbilityID: input.AbilityID,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get grant for profile %s", input.ProfileID)
	}
	if grantOutput.Grant.CurrentUses <= 0 {
		return nil, errors.FailedPreconditionf("ability %s is exhausted for profile %s", input.AbilityID, input.ProfileID)
	}

	roll, err := o.roller.Roll(attackDieSides)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll attack die")
	}

	// Persist the spent use before reporting anything. A storage failure
	// here voids the roll rather than leaving the counter stale.
	decOutput, err := o.abilityService.DecrementUses(ctx, &ability.DecrementUsesInput{
		ProfileID: input.ProfileID,
		AbilityID: input.AbilityID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to spend ability use")
	}

	output := &ResolveAttackOutput{
		Roll:          roll,
		RemainingUses: decOutput.RemainingUses,
	}

	p := profileOutput.Profile
	if p.Attack == nil {
		slog.InfoContext(ctx, "attack resolved without damage, profile has no attack stat",
			"profile_id", p.ID,
			"roll", roll,
		)
		return output, nil
	}

	damage := roll + *p.Attack
	if p.HasBladedWeapon() {
		damage += bladedWeaponBonus
	}
	switch p.Clase {
	case entities.ClassWarrior:
		damage += warriorClassBonus
	case entities.ClassRogue:
		damage += rogueClassBonus
	}
	output.Damage = &damage

	return output, nil
}
