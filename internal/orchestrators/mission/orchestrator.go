// Package mission implements the mission board orchestrator
package mission

import (
	"context"

	"github.com/tavernkeep/companion-api/internal/entities"
	"github.com/tavernkeep/companion-api/internal/errors"
	"github.com/tavernkeep/companion-api/internal/pkg/idgen"
	missionrepo "github.com/tavernkeep/companion-api/internal/repositories/mission"
	profilerepo "github.com/tavernkeep/companion-api/internal/repositories/profile"
)

// Service defines the interface for mission board operations
type Service interface {
	// CreateMission creates a new mission, defaulting status to pending
	CreateMission(ctx context.Context, input *CreateMissionInput) (*CreateMissionOutput, error)

	// GetMission retrieves a mission by ID
	GetMission(ctx context.Context, input *GetMissionInput) (*GetMissionOutput, error)

	// UpdateMission replaces a mission record after validation
	UpdateMission(ctx context.Context, input *UpdateMissionInput) (*UpdateMissionOutput, error)

	// ListMissions retrieves every mission
	ListMissions(ctx context.Context, input *ListMissionsInput) (*ListMissionsOutput, error)

	// DeleteMission removes a mission
	DeleteMission(ctx context.Context, input *DeleteMissionInput) (*DeleteMissionOutput, error)

	// AssignMission assigns a mission to a profile and marks it in progress
	AssignMission(ctx context.Context, input *AssignMissionInput) (*AssignMissionOutput, error)

	// UnassignMission clears the assignee and resets the mission to pending
	UnassignMission(ctx context.Context, input *UnassignMissionInput) (*UnassignMissionOutput, error)
}

// Config holds the dependencies for the mission orchestrator
type Config struct {
	MissionRepo missionrepo.Repository
	ProfileRepo profilerepo.Repository
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.MissionRepo == nil {
		vb.RequiredField("MissionRepo")
	}
	if c.ProfileRepo == nil {
		vb.RequiredField("ProfileRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	missionRepo missionrepo.Repository
	profileRepo profilerepo.Repository
	idGen       idgen.Generator
}

// NewOrchestrator creates a new mission orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		missionRepo: cfg.MissionRepo,
		profileRepo: cfg.ProfileRepo,
		idGen:       cfg.IDGenerator,
	}, nil
}

func (o *orchestrator) CreateMission(ctx context.Context, input *CreateMissionInput) (*CreateMissionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	status := input.Status
	if status == "" {
		status = entities.MissionPending
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Title", input.Title, vb)
	errors.ValidateRequired("Description", input.Description, vb)
	errors.ValidateEnum("Status", status, entities.MissionStatuses, vb)
	errors.ValidateEnum("Difficulty", input.Difficulty, entities.MissionDifficulties, vb)
	if input.RewardXP < 0 {
		vb.Field("RewardXP", "must not be negative")
	}
	if input.RewardGold < 0 {
		vb.Field("RewardGold", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	m := &entities.Mission{
		ID:          o.idGen.Generate(),
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		Difficulty:  input.Difficulty,
		RewardXP:    input.RewardXP,
		RewardGold:  input.RewardGold,
	}

	createOutput, err := o.missionRepo.Create(ctx, missionrepo.CreateInput{Mission: m})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create mission")
	}

	return &CreateMissionOutput{Mission: createOutput.Mission}, nil
}

func (o *orchestrator) GetMission(ctx context.Context, input *GetMissionInput) (*GetMissionOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("mission ID is required")
	}

	getOutput, err := o.missionRepo.Get(ctx, missionrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get mission %s", input.ID)
	}

	return &GetMissionOutput{Mission: getOutput.Mission}, nil
}

func (o *orchestrator) UpdateMission(ctx context.Context, input *UpdateMissionInput) (*UpdateMissionOutput, error) {
	if input == nil || input.Mission == nil {
		return nil, errors.InvalidArgument("mission is required")
	}

	m := input.Mission
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ID", m.ID, vb)
	errors.ValidateRequired("Title", m.Title, vb)
	errors.ValidateRequired("Description", m.Description, vb)
	errors.ValidateEnum("Status", m.Status, entities.MissionStatuses, vb)
	errors.ValidateEnum("Difficulty", m.Difficulty, entities.MissionDifficulties, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	updateOutput, err := o.missionRepo.Update(ctx, missionrepo.UpdateInput{Mission: m})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update mission %s", m.ID)
	}

	return &UpdateMissionOutput{Mission: updateOutput.Mission}, nil
}

func (o *orchestrator) ListMissions(ctx context.Context, _ *ListMissionsInput) (*ListMissionsOutput, error) {
	listOutput, err := o.missionRepo.List(ctx, missionrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list missions")
	}

	return &ListMissionsOutput{Missions: listOutput.Missions}, nil
}

func (o *orchestrator) DeleteMission(ctx context.Context, input *DeleteMissionInput) (*DeleteMissionOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("mission ID is required")
	}

	if _, err := o.missionRepo.Delete(ctx, missionrepo.DeleteInput{ID: input.ID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete mission %s", input.ID)
	}

	return &DeleteMissionOutput{}, nil
}

func (o *orchestrator) AssignMission(ctx context.Context, input *AssignMissionInput) (*AssignMissionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("MissionID", input.MissionID, vb)
	errors.ValidateRequired("ProfileID", input.ProfileID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	// The assignee has to exist, a dangling profile ID would strand the
	// mission in progress
	if _, err := o.profileRepo.Get(ctx, profilerepo.GetInput{ID: input.ProfileID}); err != nil {
		return nil, errors.Wrapf(err, "failed to get assignee profile %s", input.ProfileID)
	}

	getOutput, err := o.missionRepo.Get(ctx, missionrepo.GetInput{ID: input.MissionID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get mission %s", input.MissionID)
	}

	m := getOutput.Mission
	m.AssignedTo = input.ProfileID
	m.Status = entities.MissionInProgress

	updateOutput, err := o.missionRepo.Update(ctx, missionrepo.UpdateInput{Mission: m})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to assign mission %s", input.MissionID)
	}

	return &AssignMissionOutput{Mission: updateOutput.Mission}, nil
}

func (o *orchestrator) UnassignMission(ctx context.Context, input *UnassignMissionInput) (*UnassignMissionOutput, error) {
	if input == nil || input.MissionID == "" {
		return nil, errors.InvalidArgument("mission ID is required")
	}

	getOutput, err := o.missionRepo.Get(ctx, missionrepo.GetInput{ID: input.MissionID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get mission %s", input.MissionID)
	}

	// Unassigning always resets progress, whatever state the mission was in
	m := getOutput.Mission
	m.AssignedTo = ""
	m.Status = entities.MissionPending

	updateOutput, err := o.missionRepo.Update(ctx, missionrepo.UpdateInput{Mission: m})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to unassign mission %s", input.MissionID)
	}

	return &UnassignMissionOutput{Mission: updateOutput.Mission}, nil
}
