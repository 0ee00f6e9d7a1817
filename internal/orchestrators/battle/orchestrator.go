// Package battle implements the battle orchestrator: the admin's enemy
// bestiary plus the stage-and-start flow over the broadcast channel.
package battle

import (
	"context"
	"log/slog"

	battlechannel "github.com/tavernkeep/companion-api/internal/battle"
	"github.com/tavernkeep/companion-api/internal/entities"
	"github.com/tavernkeep/companion-api/internal/errors"
	"github.com/tavernkeep/companion-api/internal/pkg/idgen"
	enemyrepo "github.com/tavernkeep/companion-api/internal/repositories/enemy"
)

// Service defines the interface for bestiary and battle operations
type Service interface {
	// CreateEnemy adds an enemy to the bestiary
	CreateEnemy(ctx context.Context, input *CreateEnemyInput) (*CreateEnemyOutput, error)

	// UpdateEnemy replaces an enemy record
	UpdateEnemy(ctx context.Context, input *UpdateEnemyInput) (*UpdateEnemyOutput, error)

	// DeleteEnemy removes an enemy from the bestiary
	DeleteEnemy(ctx context.Context, input *DeleteEnemyInput) (*DeleteEnemyOutput, error)

	// ListEnemies retrieves the whole bestiary
	ListEnemies(ctx context.Context, input *ListEnemiesInput) (*ListEnemiesOutput, error)

	// StageEnemy puts a bestiary enemy on the roster. Staging the same
	// enemy twice reports Staged false and changes nothing.
	StageEnemy(ctx context.Context, input *StageEnemyInput) (*StageEnemyOutput, error)

	// UnstageEnemy takes an enemy off the roster
	UnstageEnemy(ctx context.Context, input *UnstageEnemyInput) (*UnstageEnemyOutput, error)

	// ListRoster retrieves the staged enemies in staging order
	ListRoster(ctx context.Context, input *ListRosterInput) (*ListRosterOutput, error)

	// ClearRoster unstages everything
	ClearRoster(ctx context.Context, input *ClearRosterInput) (*ClearRosterOutput, error)

	// StartBattle broadcasts the staged selection to every listener and
	// clears the roster.
	// Returns errors.FailedPrecondition when nothing is staged.
	StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error)
}

// Config holds the dependencies for the battle orchestrator
type Config struct {
	EnemyRepo   enemyrepo.Repository
	Roster      *battlechannel.Roster
	Channel     *battlechannel.Channel
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.EnemyRepo == nil {
		vb.RequiredField("EnemyRepo")
	}
	if c.Roster == nil {
		vb.RequiredField("Roster")
	}
	if c.Channel == nil {
		vb.RequiredField("Channel")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	enemyRepo enemyrepo.Repository
	roster    *battlechannel.Roster
	channel   *battlechannel.Channel
	idGen     idgen.Generator
}

// NewOrchestrator creates a new battle orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		enemyRepo: cfg.EnemyRepo,
		roster:    cfg.Roster,
		channel:   cfg.Channel,
		idGen:     cfg.IDGenerator,
	}, nil
}

func (o *orchestrator) CreateEnemy(ctx context.Context, input *CreateEnemyInput) (*CreateEnemyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Name", input.Name, vb)
	if input.TotalHP <= 0 {
		vb.Field("TotalHP", "must be positive")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	currentHP := input.CurrentHP
	if currentHP == 0 {
		currentHP = input.TotalHP
	}

	e := &entities.Enemy{
		ID:          o.idGen.Generate(),
		Name:        input.Name,
		Level:       input.Level,
		Description: input.Description,
		CurrentHP:   currentHP,
		TotalHP:     input.TotalHP,
		IsBoss:      input.IsBoss,
		ImageURL:    input.ImageURL,
		Defense:     input.Defense,
	}

	createOutput, err := o.enemyRepo.Create(ctx, enemyrepo.CreateInput{Enemy: e})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create enemy")
	}

	return &CreateEnemyOutput{Enemy: createOutput.Enemy}, nil
}

func (o *orchestrator) UpdateEnemy(ctx context.Context, input *UpdateEnemyInput) (*UpdateEnemyOutput, error) {
	if input == nil || input.Enemy == nil {
		return nil, errors.InvalidArgument("enemy is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ID", input.Enemy.ID, vb)
	errors.ValidateRequired("Name", input.Enemy.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	updateOutput, err := o.enemyRepo.Update(ctx, enemyrepo.UpdateInput{Enemy: input.Enemy})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update enemy %s", input.Enemy.ID)
	}

	return &UpdateEnemyOutput{Enemy: updateOutput.Enemy}, nil
}

func (o *orchestrator) DeleteEnemy(ctx context.Context, input *DeleteEnemyInput) (*DeleteEnemyOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("enemy ID is required")
	}

	if _, err := o.enemyRepo.Delete(ctx, enemyrepo.DeleteInput{ID: input.ID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete enemy %s", input.ID)
	}

	// A deleted enemy has no business in the next battle
	o.roster.Remove(input.ID)

	return &DeleteEnemyOutput{}, nil
}

func (o *orchestrator) ListEnemies(ctx context.Context, _ *ListEnemiesInput) (*ListEnemiesOutput, error) {
	listOutput, err := o.enemyRepo.List(ctx, enemyrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list enemies")
	}

	return &ListEnemiesOutput{Enemies: listOutput.Enemies}, nil
}

func (o *orchestrator) StageEnemy(ctx context.Context, input *StageEnemyInput) (*StageEnemyOutput, error) {
	if input == nil || input.EnemyID == "" {
		return nil, errors.InvalidArgument("enemy ID is required")
	}

	getOutput, err := o.enemyRepo.Get(ctx, enemyrepo.GetInput{ID: input.EnemyID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get enemy %s", input.EnemyID)
	}

	staged := o.roster.Add(getOutput.Enemy)
	return &StageEnemyOutput{Enemy: getOutput.Enemy, Staged: staged}, nil
}

func (o *orchestrator) UnstageEnemy(_ context.Context, input *UnstageEnemyInput) (*UnstageEnemyOutput, error) {
	if input == nil || input.EnemyID == "" {
		return nil, errors.InvalidArgument("enemy ID is required")
	}

	return &UnstageEnemyOutput{Removed: o.roster.Remove(input.EnemyID)}, nil
}

func (o *orchestrator) ListRoster(_ context.Context, _ *ListRosterInput) (*ListRosterOutput, error) {
	return &ListRosterOutput{Enemies: o.roster.Enemies()}, nil
}

func (o *orchestrator) ClearRoster(_ context.Context, _ *ClearRosterInput) (*ClearRosterOutput, error) {
	o.roster.Clear()
	return &ClearRosterOutput{}, nil
}

func (o *orchestrator) StartBattle(ctx context.Context, _ *StartBattleInput) (*StartBattleOutput, error) {
	enemies := o.roster.Enemies()

	if err := o.roster.StartBattle(ctx, o.channel); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "battle started", "enemy_count", len(enemies))

	return &StartBattleOutput{Enemies: enemies}, nil
}
