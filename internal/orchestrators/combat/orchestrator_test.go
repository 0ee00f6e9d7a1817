package combat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tavernkeep/companion-api/internal/entities"
	"github.com/tavernkeep/companion-api/internal/errors"
	"github.com/tavernkeep/companion-api/internal/orchestrators/ability"
	abilitysvcmock "github.com/tavernkeep/companion-api/internal/orchestrators/ability/mock"
	"github.com/tavernkeep/companion-api/internal/pkg/dice"
	"github.com/tavernkeep/companion-api/internal/repositories/grant"
	grantmock "github.com/tavernkeep/companion-api/internal/repositories/grant/mock"
	profilerepo "github.com/tavernkeep/companion-api/internal/repositories/profile"
	profilemock "github.com/tavernkeep/companion-api/internal/repositories/profile/mock"
)

type combatMocks struct {
	profileRepo    *profilemock.MockRepository
	grantRepo      *grantmock.MockRepository
	abilityService *abilitysvcmock.MockService
}

func newCombat(t *testing.T, roller dice.Roller) (Service, combatMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := combatMocks{
		profileRepo:    profilemock.NewMockRepository(ctrl),
		grantRepo:      grantmock.NewMockRepository(ctrl),
		abilityService: abilitysvcmock.NewMockService(ctrl),
	}

	svc, err := NewOrchestrator(&Config{
		ProfileRepo:    mocks.profileRepo,
		GrantRepo:      mocks.grantRepo,
		AbilityService: mocks.abilityService,
		Roller:         roller,
	})
	require.NoError(t, err)

	return svc, mocks
}

func int32Ptr(v int32) *int32 { return &v }

func expectLookups(ctx context.Context, mocks combatMocks, p *entities.Profile, remaining int32) {
	mocks.profileRepo.EXPECT().
		Get(ctx, profilerepo.GetInput{ID: p.ID}).
		Return(&profilerepo.GetOutput{Profile: p}, nil)
	mocks.grantRepo.EXPECT().
		Get(ctx, grant.GetInput{ProfileID: p.ID, AbilityID: "hab-1"}).
		Return(&grant.GetOutput{Grant: &entities.AbilityGrant{
			ProfileID: p.ID, AbilityID: "hab-1", CurrentUses: remaining,
		}}, nil)
}

func TestOrchestrator_ResolveAttack_FullStack(t *testing.T) {
	// Roll 4 + attack 5 + Espada 2 + Guerrero 2 = 13
	svc, mocks := newCombat(t, &dice.FixedRoller{Values: []int32{4}})
	ctx := context.Background()

	p := &entities.Profile{
		ID:     "profile-1",
		Clase:  entities.ClassWarrior,
		Weapon: entities.WeaponSword,
		Attack: int32Ptr(5),
	}
	expectLookups(ctx, mocks, p, 2)
	mocks.abilityService.EXPECT().
		DecrementUses(ctx, &ability.DecrementUsesInput{ProfileID: "profile-1", AbilityID: "hab-1"}).
		Return(&ability.DecrementUsesOutput{RemainingUses: 1}, nil)

	output, err := svc.ResolveAttack(ctx, &ResolveAttackInput{ProfileID: "profile-1", AbilityID: "hab-1"})
	require.NoError(t, err)
	assert.Equal(t, int32(4), output.Roll)
	require.NotNil(t, output.Damage)
	assert.Equal(t, int32(13), *output.Damage)
	assert.Equal(t, int32(1), output.RemainingUses)
}

func TestOrchestrator_ResolveAttack_RogueBonus(t *testing.T) {
	// Roll 3 + attack 2 + Dagas 2 + Pícaro 1 = 8
	svc, mocks := newCombat(t, &dice.FixedRoller{Values: []int32{3}})
	ctx := context.Background()

	p := &entities.Profile{
		ID:     "profile-1",
		Clase:  entities.ClassRogue,
		Weapon: entities.WeaponDaggers,
		Attack: int32Ptr(2),
	}
	expectLookups(ctx, mocks, p, 1)
	mocks.abilityService.EXPECT().
		DecrementUses(ctx, gomock.Any()).
		Return(&ability.DecrementUsesOutput{RemainingUses: 0}, nil)

	output, err := svc.ResolveAttack(ctx, &ResolveAttackInput{ProfileID: "profile-1", AbilityID: "hab-1"})
	require.NoError(t, err)
	require.NotNil(t, output.Damage)
	assert.Equal(t, int32(8), *output.Damage)
}

func TestOrchestrator_ResolveAttack_NoAttackStat(t *testing.T) {
	svc, mocks := newCombat(t, &dice.FixedRoller{Values: []int32{6}})
	ctx := context.Background()

	p := &entities.Profile{
		ID:     "profile-1",
		Clase:  entities.ClassMage,
		Weapon: "Bastón",
	}
	expectLookups(ctx, mocks, p, 1)
	mocks.abilityService.EXPECT().
		DecrementUses(ctx, gomock.Any()).
		Return(&ability.DecrementUsesOutput{RemainingUses: 0}, nil)

	output, err := svc.ResolveAttack(ctx, &ResolveAttackInput{ProfileID: "profile-1", AbilityID: "hab-1"})
	require.NoError(t, err)
	assert.Equal(t, int32(6), output.Roll)
	assert.Nil(t, output.Damage)
}

func TestOrchestrator_ResolveAttack_Exhausted(t *testing.T) {
	svc, mocks := newCombat(t, &dice.FixedRoller{Values: []int32{4}})
	ctx := context.Background()

	p := &entities.Profile{
		ID:     "profile-1",
		Clase:  entities.ClassWarrior,
		Attack: int32Ptr(5),
	}
	expectLookups(ctx, mocks, p, 0)

	output, err := svc.ResolveAttack(ctx, &ResolveAttackInput{ProfileID: "profile-1", AbilityID: "hab-1"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.Equal(t, errors.CodeFailedPrecondition, errors.GetCode(err))
}

func TestOrchestrator_ResolveAttack_PersistenceFailureVoidsRoll(t *testing.T) {
	svc, mocks := newCombat(t, &dice.FixedRoller{Values: []int32{4}})
	ctx := context.Background()

	p := &entities.Profile{
		ID:     "profile-1",
		Clase:  entities.ClassWarrior,
		Attack: int32Ptr(5),
	}
	expectLookups(ctx, mocks, p, 2)
	mocks.abilityService.EXPECT().
		DecrementUses(ctx, gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	output, err := svc.ResolveAttack(ctx, &ResolveAttackInput{ProfileID: "profile-1", AbilityID: "hab-1"})
	require.Error(t, err)
	assert.Nil(t, output)
}
