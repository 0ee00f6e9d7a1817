package battle

import (
	"github.com/tavernkeep/companion-api/internal/entities"
)

// CreateEnemyInput defines the input for creating an enemy
type CreateEnemyInput struct {
	Name        string
	Level       int32
	Description string
	CurrentHP   int32
	TotalHP     int32
	IsBoss      bool
	ImageURL    string
	Defense     *int32
}

// CreateEnemyOutput defines the output for creating an enemy
type CreateEnemyOutput struct {
	Enemy *entities.Enemy
}

// UpdateEnemyInput defines the input for updating an enemy
type UpdateEnemyInput struct {
	Enemy *entities.Enemy
}

// UpdateEnemyOutput defines the output for updating an enemy
type UpdateEnemyOutput struct {
	Enemy *entities.Enemy
}

// DeleteEnemyInput defines the input for deleting an enemy
type DeleteEnemyInput struct {
	ID string
}

// DeleteEnemyOutput defines the output for deleting an enemy
type DeleteEnemyOutput struct{}

// ListEnemiesInput defines the input for listing enemies
type ListEnemiesInput struct{}

// ListEnemiesOutput defines the output for listing enemies
type ListEnemiesOutput struct {
	Enemies []*entities.Enemy
}

// StageEnemyInput defines the input for staging an enemy on the roster
type StageEnemyInput struct {
	EnemyID string
}

// StageEnemyOutput reports whether the enemy was newly staged or already
// on the roster
type StageEnemyOutput struct {
	Enemy  *entities.Enemy
	Staged bool
}

// UnstageEnemyInput defines the input for removing an enemy from the roster
type UnstageEnemyInput struct {
	EnemyID string
}

// UnstageEnemyOutput reports whether the enemy was actually staged
type UnstageEnemyOutput struct {
	Removed bool
}

// ListRosterInput defines the input for listing the staged roster
type ListRosterInput struct{}

// ListRosterOutput defines the output for listing the staged roster
type ListRosterOutput struct {
	Enemies []*entities.Enemy
}

// ClearRosterInput defines the input for clearing the roster
type ClearRosterInput struct{}

// ClearRosterOutput defines the output for clearing the roster
type ClearRosterOutput struct{}

// StartBattleInput defines the input for broadcasting a battle start
type StartBattleInput struct{}

// StartBattleOutput defines the output for broadcasting a battle start
type StartBattleOutput struct {
	Enemies []*entities.Enemy
}
