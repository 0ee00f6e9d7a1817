package mission_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/tavernkeep/companion-api/internal/entities"
	"github.com/tavernkeep/companion-api/internal/errors"
	"github.com/tavernkeep/companion-api/internal/orchestrators/mission"
	"github.com/tavernkeep/companion-api/internal/pkg/idgen"
	redisclient "github.com/tavernkeep/companion-api/internal/redis"
	missionrepo "github.com/tavernkeep/companion-api/internal/repositories/mission"
	profilerepo "github.com/tavernkeep/companion-api/internal/repositories/profile"
)

type MissionOrchestratorTestSuite struct {
	suite.Suite
	miniRedis   *miniredis.Miniredis
	client      redisclient.Client
	profileRepo profilerepo.Repository
	svc         mission.Service
	ctx         context.Context
}

func (s *MissionOrchestratorTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.miniRedis = mr

	s.client = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s.ctx = context.Background()

	missionRepo, err := missionrepo.NewRedis(&missionrepo.RedisConfig{Client: s.client})
	s.Require().NoError(err)

	s.profileRepo, err = profilerepo.NewRedis(&profilerepo.RedisConfig{Client: s.client})
	s.Require().NoError(err)

	s.svc, err = mission.NewOrchestrator(&mission.Config{
		MissionRepo: missionRepo,
		ProfileRepo: s.profileRepo,
		IDGenerator: idgen.NewSequential("mission"),
	})
	s.Require().NoError(err)
}

func (s *MissionOrchestratorTestSuite) TearDownTest() {
	s.miniRedis.Close()
}

func (s *MissionOrchestratorTestSuite) createMission() *entities.Mission {
	output, err := s.svc.CreateMission(s.ctx, &mission.CreateMissionInput{
		Title:       "Escort the caravan",
		Description: "Get the merchants through the pass",
		Difficulty:  entities.DifficultyMedium,
		RewardXP:    100,
		RewardGold:  50,
	})
	s.Require().NoError(err)
	return output.Mission
}

func (s *MissionOrchestratorTestSuite) createProfile(id string) {
	_, err := s.profileRepo.Create(s.ctx, profilerepo.CreateInput{
		Profile: &entities.Profile{
			ID:       id,
			Username: "kael",
			Clase:    entities.ClassWarrior,
			Power:    entities.PowerPyro,
			Level:    1,
		},
	})
	s.Require().NoError(err)
}

func (s *MissionOrchestratorTestSuite) TestCreateMission_Defaults() {
	m := s.createMission()

	s.Equal(entities.MissionPending, m.Status)
	s.Empty(m.AssignedTo)
	s.NotEmpty(m.ID)
}

func (s *MissionOrchestratorTestSuite) TestCreateMission_Validation() {
	_, err := s.svc.CreateMission(s.ctx, &mission.CreateMissionInput{
		Title:      "",
		Difficulty: "impossible",
		RewardXP:   -1,
	})
	s.Require().Error(err)
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(err))
}

func (s *MissionOrchestratorTestSuite) TestAssignMission() {
	s.createProfile("profile-1")
	m := s.createMission()

	output, err := s.svc.AssignMission(s.ctx, &mission.AssignMissionInput{
		MissionID: m.ID,
		ProfileID: "profile-1",
	})
	s.Require().NoError(err)
	s.Equal("profile-1", output.Mission.AssignedTo)
	s.Equal(entities.MissionInProgress, output.Mission.Status)
}

func (s *MissionOrchestratorTestSuite) TestAssignMission_UnknownProfile() {
	m := s.createMission()

	_, err := s.svc.AssignMission(s.ctx, &mission.AssignMissionInput{
		MissionID: m.ID,
		ProfileID: "nobody",
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *MissionOrchestratorTestSuite) TestUnassignMission_ResetsStatus() {
	s.createProfile("profile-1")
	m := s.createMission()

	_, err := s.svc.AssignMission(s.ctx, &mission.AssignMissionInput{
		MissionID: m.ID,
		ProfileID: "profile-1",
	})
	s.Require().NoError(err)

	output, err := s.svc.UnassignMission(s.ctx, &mission.UnassignMissionInput{MissionID: m.ID})
	s.Require().NoError(err)

	// Both the assignee and the progress go, never one without the other
	s.Empty(output.Mission.AssignedTo)
	s.Equal(entities.MissionPending, output.Mission.Status)

	stored, err := s.svc.GetMission(s.ctx, &mission.GetMissionInput{ID: m.ID})
	s.Require().NoError(err)
	s.Empty(stored.Mission.AssignedTo)
	s.Equal(entities.MissionPending, stored.Mission.Status)
}

func (s *MissionOrchestratorTestSuite) TestUnassignMission_FromCompleted() {
	s.createProfile("profile-1")
	m := s.createMission()

	m.Status = entities.MissionCompleted
	m.AssignedTo = "profile-1"
	_, err := s.svc.UpdateMission(s.ctx, &mission.UpdateMissionInput{Mission: m})
	s.Require().NoError(err)

	output, err := s.svc.UnassignMission(s.ctx, &mission.UnassignMissionInput{MissionID: m.ID})
	s.Require().NoError(err)
	s.Equal(entities.MissionPending, output.Mission.Status)
}

func (s *MissionOrchestratorTestSuite) TestDeleteMission() {
	m := s.createMission()

	_, err := s.svc.DeleteMission(s.ctx, &mission.DeleteMissionInput{ID: m.ID})
	s.Require().NoError(err)

	_, err = s.svc.GetMission(s.ctx, &mission.GetMissionInput{ID: m.ID})
	s.True(errors.IsNotFound(err))
}

func (s *MissionOrchestratorTestSuite) TestListMissions() {
	s.createMission()
	s.createMission()

	output, err := s.svc.ListMissions(s.ctx, &mission.ListMissionsInput{})
	s.Require().NoError(err)
	s.Len(output.Missions, 2)
}

func TestMissionOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(MissionOrchestratorTestSuite))
}
