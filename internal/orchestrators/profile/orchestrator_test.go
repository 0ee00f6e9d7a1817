package profile_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/tavernkeep/companion-api/internal/entities"
	"github.com/tavernkeep/companion-api/internal/errors"
	"github.com/tavernkeep/companion-api/internal/orchestrators/profile"
	"github.com/tavernkeep/companion-api/internal/pkg/clock"
	"github.com/tavernkeep/companion-api/internal/pkg/idgen"
	redisclient "github.com/tavernkeep/companion-api/internal/redis"
	"github.com/tavernkeep/companion-api/internal/repositories/grant"
	itemrepo "github.com/tavernkeep/companion-api/internal/repositories/item"
	npcrepo "github.com/tavernkeep/companion-api/internal/repositories/npc"
	profilerepo "github.com/tavernkeep/companion-api/internal/repositories/profile"
	userrepo "github.com/tavernkeep/companion-api/internal/repositories/user"
)

type ProfileOrchestratorTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	client    redisclient.Client
	grantRepo grant.Repository
	svc       profile.Service
	ctx       context.Context
}

func (s *ProfileOrchestratorTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.miniRedis = mr

	s.client = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s.ctx = context.Background()

	profileRepo, err := profilerepo.NewRedis(&profilerepo.RedisConfig{Client: s.client})
	s.Require().NoError(err)
	userRepo, err := userrepo.NewRedis(&userrepo.RedisConfig{Client: s.client})
	s.Require().NoError(err)
	s.grantRepo, err = grant.NewRedis(&grant.RedisConfig{Client: s.client})
	s.Require().NoError(err)
	itemRepo, err := itemrepo.NewRedis(&itemrepo.RedisConfig{Client: s.client})
	s.Require().NoError(err)
	npcRepo, err := npcrepo.NewRedis(&npcrepo.RedisConfig{Client: s.client})
	s.Require().NoError(err)

	s.svc, err = profile.NewOrchestrator(&profile.Config{
		ProfileRepo: profileRepo,
		UserRepo:    userRepo,
		GrantRepo:   s.grantRepo,
		ItemRepo:    itemRepo,
		NPCRepo:     npcRepo,
		IDGenerator: &idgen.SequentialNumber{},
		Clock:       clock.NewFixed(clock.New().Now()),
	})
	s.Require().NoError(err)
}

func (s *ProfileOrchestratorTestSuite) TearDownTest() {
	s.miniRedis.Close()
}

func (s *ProfileOrchestratorTestSuite) signup(userID string) *profile.SignupOutput {
	output, err := s.svc.Signup(s.ctx, &profile.SignupInput{
		UserID:   userID,
		Email:    userID + "@example.com",
		Username: "kael",
	})
	s.Require().NoError(err)
	return output
}

func (s *ProfileOrchestratorTestSuite) TestSignup_DefaultProfile() {
	output := s.signup("user-1")

	p := output.Profile
	s.Equal("user-1", p.ID)
	s.Equal("kael", p.Username)
	s.Equal(entities.ClassBase, p.Clase)
	s.Equal(entities.PowerUniversal, p.Power)
	s.Equal(int32(1), p.Level)
	s.Nil(p.Attack)

	users, err := s.svc.ListUsers(s.ctx, &profile.ListUsersInput{})
	s.Require().NoError(err)
	s.Len(users.Users, 1)
}

func (s *ProfileOrchestratorTestSuite) TestSignup_DuplicateProfile() {
	s.signup("user-1")

	_, err := s.svc.Signup(s.ctx, &profile.SignupInput{
		UserID:   "user-1",
		Email:    "user-1@example.com",
		Username: "kael",
	})
	s.Require().Error(err)
	s.Equal(errors.CodeAlreadyExists, errors.GetCode(err))
}

func (s *ProfileOrchestratorTestSuite) TestUpdateStats_Partial() {
	s.signup("user-1")

	hp := int32(25)
	attack := int32(7)
	output, err := s.svc.UpdateStats(s.ctx, &profile.UpdateStatsInput{
		ProfileID: "user-1",
		TotalHP:   &hp,
		Attack:    &attack,
	})
	s.Require().NoError(err)

	s.Equal(int32(25), output.Profile.TotalHP)
	s.Require().NotNil(output.Profile.Attack)
	s.Equal(int32(7), *output.Profile.Attack)
	// Untouched fields keep their signup defaults
	s.Equal(int32(10), output.Profile.CurrentHP)
}

func (s *ProfileOrchestratorTestSuite) TestUpdateStats_OutOfRange() {
	s.signup("user-1")

	bad := int32(-5)
	_, err := s.svc.UpdateStats(s.ctx, &profile.UpdateStatsInput{
		ProfileID: "user-1",
		Defense:   &bad,
	})
	s.Require().Error(err)
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(err))
}

func (s *ProfileOrchestratorTestSuite) TestItemLifecycle() {
	s.signup("user-1")

	created, err := s.svc.CreateItem(s.ctx, &profile.CreateItemInput{
		ProfileID: "user-1",
		Name:      "Poción",
		Quantity:  3,
		Value:     10,
	})
	s.Require().NoError(err)
	s.NotZero(created.Item.ID)

	items, err := s.svc.ListItems(s.ctx, &profile.ListItemsInput{ProfileID: "user-1"})
	s.Require().NoError(err)
	s.Len(items.Items, 1)

	_, err = s.svc.DeleteItem(s.ctx, &profile.DeleteItemInput{ItemID: created.Item.ID})
	s.Require().NoError(err)

	items, err = s.svc.ListItems(s.ctx, &profile.ListItemsInput{ProfileID: "user-1"})
	s.Require().NoError(err)
	s.Empty(items.Items)
}

func (s *ProfileOrchestratorTestSuite) TestCreateItem_UnknownProfile() {
	_, err := s.svc.CreateItem(s.ctx, &profile.CreateItemInput{
		ProfileID: "nobody",
		Name:      "Poción",
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *ProfileOrchestratorTestSuite) TestDeleteUser_Cascade() {
	s.signup("user-1")

	_, err := s.svc.CreateItem(s.ctx, &profile.CreateItemInput{
		ProfileID: "user-1",
		Name:      "Poción",
	})
	s.Require().NoError(err)

	_, err = s.grantRepo.Put(s.ctx, grant.PutInput{Grant: &entities.AbilityGrant{
		ProfileID:   "user-1",
		AbilityID:   "hab-1",
		CurrentUses: 2,
	}})
	s.Require().NoError(err)

	output, err := s.svc.DeleteUser(s.ctx, &profile.DeleteUserInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Equal(1, output.GrantsDeleted)
	s.Equal(1, output.ItemsDeleted)

	_, err = s.svc.GetProfile(s.ctx, &profile.GetProfileInput{ID: "user-1"})
	s.True(errors.IsNotFound(err))

	users, err := s.svc.ListUsers(s.ctx, &profile.ListUsersInput{})
	s.Require().NoError(err)
	s.Empty(users.Users)

	grants, err := s.grantRepo.ListByProfile(s.ctx, grant.ListByProfileInput{ProfileID: "user-1"})
	s.Require().NoError(err)
	s.Empty(grants.Grants)
}

func (s *ProfileOrchestratorTestSuite) TestNPCLifecycle() {
	created, err := s.svc.CreateNPC(s.ctx, &profile.CreateNPCInput{
		Name:        "Tabernero",
		Description: "Runs the inn",
	})
	s.Require().NoError(err)
	s.NotZero(created.NPC.ID)

	created.NPC.Description = "Runs the inn, knows everyone"
	updated, err := s.svc.UpdateNPC(s.ctx, &profile.UpdateNPCInput{NPC: created.NPC})
	s.Require().NoError(err)
	s.Equal("Runs the inn, knows everyone", updated.NPC.Description)

	npcs, err := s.svc.ListNPCs(s.ctx, &profile.ListNPCsInput{})
	s.Require().NoError(err)
	s.Len(npcs.NPCs, 1)

	_, err = s.svc.DeleteNPC(s.ctx, &profile.DeleteNPCInput{ID: created.NPC.ID})
	s.Require().NoError(err)

	npcs, err = s.svc.ListNPCs(s.ctx, &profile.ListNPCsInput{})
	s.Require().NoError(err)
	s.Empty(npcs.NPCs)
}

func TestProfileOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileOrchestratorTestSuite))
}
