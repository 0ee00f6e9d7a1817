package mission

import (
	"github.com/tavernkeep/companion-api/internal/entities"
)

// CreateMissionInput defines the input for creating a mission
type CreateMissionInput struct {
	Title       string
	Description string
	Status      string
	Difficulty  string
	RewardXP    int32
	RewardGold  int32
}

// CreateMissionOutput defines the output for creating a mission
type CreateMissionOutput struct {
	Mission *entities.Mission
}

// GetMissionInput defines the input for getting a mission
type GetMissionInput struct {
	ID string
}

// GetMissionOutput defines the output for getting a mission
type GetMissionOutput struct {
	Mission *entities.Mission
}

// UpdateMissionInput defines the input for updating a mission.
// The record is replaced wholesale; assignment fields go through
// Assign/Unassign instead.
type UpdateMissionInput struct {
	Mission *entities.Mission
}

// UpdateMissionOutput defines the output for updating a mission
type UpdateMissionOutput struct {
	Mission *entities.Mission
}

// ListMissionsInput defines the input for listing missions
type ListMissionsInput struct{}

// ListMissionsOutput defines the output for listing missions
type ListMissionsOutput struct {
	Missions []*entities.Mission
}

// DeleteMissionInput defines the input for deleting a mission
type DeleteMissionInput struct {
	ID string
}

// DeleteMissionOutput defines the output for deleting a mission
type DeleteMissionOutput struct{}

// AssignMissionInput defines the input for assigning a mission to a profile
type AssignMissionInput struct {
	MissionID string
	ProfileID string
}

// AssignMissionOutput defines the output for assigning a mission
type AssignMissionOutput struct {
	Mission *entities.Mission
}

// UnassignMissionInput defines the input for unassigning a mission
type UnassignMissionInput struct {
	MissionID string
}

// UnassignMissionOutput defines the output for unassigning a mission
type UnassignMissionOutput struct {
	Mission *entities.Mission
}
