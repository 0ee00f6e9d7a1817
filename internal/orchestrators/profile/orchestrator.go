// Package profile implements the profile orchestrator: signup provisioning,
// stat edits, inventory, NPCs, the user directory, and the user-deletion
// cascade.
package profile

import (
	"context"
	"log/slog"

	"github.com/tavernkeep/companion-api/internal/entities"
	"github.com/tavernkeep/companion-api/internal/errors"
	"github.com/tavernkeep/companion-api/internal/pkg/clock"
	"github.com/tavernkeep/companion-api/internal/pkg/idgen"
	"github.com/tavernkeep/companion-api/internal/repositories/grant"
	itemrepo "github.com/tavernkeep/companion-api/internal/repositories/item"
	npcrepo "github.com/tavernkeep/companion-api/internal/repositories/npc"
	profilerepo "github.com/tavernkeep/companion-api/internal/repositories/profile"
	userrepo "github.com/tavernkeep/companion-api/internal/repositories/user"
)

// New profiles start with placeholder values the player edits later,
// matching the original signup flow
const (
	defaultLevel  = 1
	defaultWeapon = "test"
	defaultHP     = 10
)

const maxStatValue = 999

// Service defines the interface for profile and account operations
type Service interface {
	// Signup provisions the directory entry and the default profile for a
	// newly authenticated user
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)

	// GetProfile retrieves a profile by ID
	GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error)

	// ListProfiles retrieves every profile, for the admin directory
	ListProfiles(ctx context.Context, input *ListProfilesInput) (*ListProfilesOutput, error)

	// UpdateStats applies a player's partial stat edit with range checks
	UpdateStats(ctx context.Context, input *UpdateStatsInput) (*UpdateStatsOutput, error)

	// UpdateProfile replaces a profile record, the admin edit path
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*UpdateProfileOutput, error)

	// DeleteUser removes a user and cascades to their profile, grants,
	// and items. The only hard-delete path in the system.
	DeleteUser(ctx context.Context, input *DeleteUserInput) (*DeleteUserOutput, error)

	// ListUsers retrieves the user directory
	ListUsers(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error)

	// CreateItem adds an inventory item to a profile
	CreateItem(ctx context.Context, input *CreateItemInput) (*CreateItemOutput, error)

	// ListItems retrieves a profile's inventory
	ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error)

	// DeleteItem removes an inventory item
	DeleteItem(ctx context.Context, input *DeleteItemInput) (*DeleteItemOutput, error)

	// CreateNPC creates an admin-managed NPC
	CreateNPC(ctx context.Context, input *CreateNPCInput) (*CreateNPCOutput, error)

	// UpdateNPC replaces an NPC record
	UpdateNPC(ctx context.Context, input *UpdateNPCInput) (*UpdateNPCOutput, error)

	// DeleteNPC removes an NPC
	DeleteNPC(ctx context.Context, input *DeleteNPCInput) (*DeleteNPCOutput, error)

	// ListNPCs retrieves every NPC
	ListNPCs(ctx context.Context, input *ListNPCsInput) (*ListNPCsOutput, error)
}

// Config holds the dependencies for the profile orchestrator
type Config struct {
	ProfileRepo profilerepo.Repository
	UserRepo    userrepo.Repository
	GrantRepo   grant.Repository
	ItemRepo    itemrepo.Repository
	NPCRepo     npcrepo.Repository
	IDGenerator idgen.NumberGenerator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ProfileRepo == nil {
		vb.RequiredField("ProfileRepo")
	}
	if c.UserRepo == nil {
		vb.RequiredField("UserRepo")
	}
	if c.GrantRepo == nil {
		vb.RequiredField("GrantRepo")
	}
	if c.ItemRepo == nil {
		vb.RequiredField("ItemRepo")
	}
	if c.NPCRepo == nil {
		vb.RequiredField("NPCRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	profileRepo profilerepo.Repository
	userRepo    userrepo.Repository
	grantRepo   grant.Repository
	itemRepo    itemrepo.Repository
	npcRepo     npcrepo.Repository
	idGen       idgen.NumberGenerator
	clock       clock.Clock
}

// NewOrchestrator creates a new profile orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		profileRepo: cfg.ProfileRepo,
		userRepo:    cfg.UserRepo,
		grantRepo:   cfg.GrantRepo,
		itemRepo:    cfg.ItemRepo,
		npcRepo:     cfg.NPCRepo,
		idGen:       cfg.IDGenerator,
		clock:       c,
	}, nil
}

func (o *orchestrator) Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("UserID", input.UserID, vb)
	errors.ValidateRequired("Email", input.Email, vb)
	errors.ValidateRequired("Username", input.Username, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	u := &entities.User{
		ID:        input.UserID,
		Email:     input.Email,
		Username:  input.Username,
		CreatedAt: o.clock.Now().Unix(),
	}
	if _, err := o.userRepo.Put(ctx, userrepo.PutInput{User: u}); err != nil {
		return nil, errors.Wrap(err, "failed to store user")
	}

	p := &entities.Profile{
		ID:        input.UserID,
		Username:  input.Username,
		Clase:     entities.ClassBase,
		Power:     entities.PowerUniversal,
		Level:     defaultLevel,
		Weapon:    defaultWeapon,
		CurrentHP: defaultHP,
		TotalHP:   defaultHP,
	}
	createOutput, err := o.profileRepo.Create(ctx, profilerepo.CreateInput{Profile: p})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create default profile")
	}

	slog.InfoContext(ctx, "provisioned new user",
		"user_id", input.UserID,
		"username", input.Username,
	)

	return &SignupOutput{User: u, Profile: createOutput.Profile}, nil
}

func (o *orchestrator) GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("profile ID is required")
	}

	getOutput, err := o.profileRepo.Get(ctx, profilerepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get profile %s", input.ID)
	}

	return &GetProfileOutput{Profile: getOutput.Profile}, nil
}

func (o *orchestrator) ListProfiles(ctx context.Context, _ *ListProfilesInput) (*ListProfilesOutput, error) {
	listOutput, err := o.profileRepo.List(ctx, profilerepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	return &ListProfilesOutput{Profiles: listOutput.Profiles}, nil
}

func (o *orchestrator) UpdateStats(ctx context.Context, input *UpdateStatsInput) (*UpdateStatsOutput, error) {
	if input == nil || input.ProfileID == "" {
		return nil, errors.InvalidArgument("profile ID is required")
	}

	getOutput, err := o.profileRepo.Get(ctx, profilerepo.GetInput{ID: input.ProfileID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get profile %s", input.ProfileID)
	}
	p := getOutput.Profile

	vb := errors.NewValidationBuilder()
	applyStat := func(field string, target *int32, value *int32) {
		if value == nil {
			return
		}
		errors.ValidateRange(field, *value, 0, maxStatValue, vb)
		*target = *value
	}

	applyStat("CurrentHP", &p.CurrentHP, input.CurrentHP)
	applyStat("TotalHP", &p.TotalHP, input.TotalHP)
	applyStat("Defense", &p.Defense, input.Defense)
	applyStat("SpecialAttack", &p.SpecialAttack, input.SpecialAttack)
	applyStat("SpecialDefense", &p.SpecialDefense, input.SpecialDefense)
	applyStat("Speed", &p.Speed, input.Speed)
	applyStat("CurrentExperience", &p.CurrentExperience, input.CurrentExperience)
	if input.Attack != nil {
		errors.ValidateRange("Attack", *input.Attack, 0, maxStatValue, vb)
		attack := *input.Attack
		p.Attack = &attack
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	updateOutput, err := o.profileRepo.Update(ctx, profilerepo.UpdateInput{Profile: p})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update profile %s", input.ProfileID)
	}

	return &UpdateStatsOutput{Profile: updateOutput.Profile}, nil
}

func (o *orchestrator) UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*UpdateProfileOutput, error) {
	if input == nil || input.Profile == nil {
		return nil, errors.InvalidArgument("profile is required")
	}

	p := input.Profile
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ID", p.ID, vb)
	errors.ValidateRequired("Username", p.Username, vb)
	errors.ValidateEnum("Clase", p.Clase, []string{
		entities.ClassBase, entities.ClassWarrior, entities.ClassRogue, entities.ClassMage,
	}, vb)
	errors.ValidateEnum("Power", p.Power, entities.Powers, vb)
	if p.Level < 1 {
		vb.Field("Level", "must be at least 1")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	updateOutput, err := o.profileRepo.Update(ctx, profilerepo.UpdateInput{Profile: p})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update profile %s", p.ID)
	}

	return &UpdateProfileOutput{Profile: updateOutput.Profile}, nil
}

func (o *orchestrator) DeleteUser(ctx context.Context, input *DeleteUserInput) (*DeleteUserOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.InvalidArgument("user ID is required")
	}

	// Dependents go first so a failure partway leaves the profile and the
	// user entry intact and the cascade retryable
	grantsOutput, err := o.grantRepo.DeleteByProfile(ctx, grant.DeleteByProfileInput{ProfileID: input.UserID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete grants for user %s", input.UserID)
	}

	itemsOutput, err := o.itemRepo.DeleteByProfile(ctx, itemrepo.DeleteByProfileInput{ProfileID: input.UserID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete items for user %s", input.UserID)
	}

	if _, err := o.profileRepo.Delete(ctx, profilerepo.DeleteInput{ID: input.UserID}); err != nil && !errors.IsNotFound(err) {
		return nil, errors.Wrapf(err, "failed to delete profile for user %s", input.UserID)
	}

	if _, err := o.userRepo.Delete(ctx, userrepo.DeleteInput{ID: input.UserID}); err != nil && !errors.IsNotFound(err) {
		return nil, errors.Wrapf(err, "failed to delete user %s", input.UserID)
	}

	slog.InfoContext(ctx, "deleted user",
		"user_id", input.UserID,
		"grants_deleted", grantsOutput.Deleted,
		"items_deleted", itemsOutput.Deleted,
	)

	return &DeleteUserOutput{
		GrantsDeleted: grantsOutput.Deleted,
		ItemsDeleted:  itemsOutput.Deleted,
	}, nil
}

func (o *orchestrator) ListUsers(ctx context.Context, _ *ListUsersInput) (*ListUsersOutput, error) {
	listOutput, err := o.userRepo.List(ctx, userrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return &ListUsersOutput{Users: listOutput.Users}, nil
}

func (o *orchestrator) CreateItem(ctx context.Context, input *CreateItemInput) (*CreateItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ProfileID", input.ProfileID, vb)
	errors.ValidateRequired("Name", input.Name, vb)
	if input.Quantity < 0 {
		vb.Field("Quantity", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	// The owner has to exist before anything is indexed under it
	if _, err := o.profileRepo.Get(ctx, profilerepo.GetInput{ID: input.ProfileID}); err != nil {
		return nil, errors.Wrapf(err, "failed to get profile %s", input.ProfileID)
	}

	item := &entities.Item{
		ID:          o.idGen.GenerateNumber(),
		ProfileID:   input.ProfileID,
		Name:        input.Name,
		Description: input.Description,
		Quantity:    input.Quantity,
		Value:       input.Value,
		ImageURL:    input.ImageURL,
	}

	createOutput, err := o.itemRepo.Create(ctx, itemrepo.CreateInput{Item: item})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create item")
	}

	return &CreateItemOutput{Item: createOutput.Item}, nil
}

func (o *orchestrator) ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error) {
	if input == nil || input.ProfileID == "" {
		return nil, errors.InvalidArgument("profile ID is required")
	}

	listOutput, err := o.itemRepo.ListByProfile(ctx, itemrepo.ListByProfileInput{ProfileID: input.ProfileID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list items for profile %s", input.ProfileID)
	}

	return &ListItemsOutput{Items: listOutput.Items}, nil
}

func (o *orchestrator) DeleteItem(ctx context.Context, input *DeleteItemInput) (*DeleteItemOutput, error) {
	if input == nil || input.ItemID == 0 {
		return nil, errors.InvalidArgument("item ID is required")
	}

	if _, err := o.itemRepo.Delete(ctx, itemrepo.DeleteInput{ID: input.ItemID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete item %d", input.ItemID)
	}

	return &DeleteItemOutput{}, nil
}

func (o *orchestrator) CreateNPC(ctx context.Context, input *CreateNPCInput) (*CreateNPCOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	n := &entities.NPC{
		ID:          o.idGen.GenerateNumber(),
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}

	createOutput, err := o.npcRepo.Create(ctx, npcrepo.CreateInput{NPC: n})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create npc")
	}

	return &CreateNPCOutput{NPC: createOutput.NPC}, nil
}

func (o *orchestrator) UpdateNPC(ctx context.Context, input *UpdateNPCInput) (*UpdateNPCOutput, error) {
	if input == nil || input.NPC == nil {
		return nil, errors.InvalidArgument("npc is required")
	}
	vb := errors.NewValidationBuilder()
	if input.NPC.ID == 0 {
		vb.RequiredField("ID")
	}
	errors.ValidateRequired("Name", input.NPC.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	updateOutput, err := o.npcRepo.Update(ctx, npcrepo.UpdateInput{NPC: input.NPC})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update npc %d", input.NPC.ID)
	}

	return &UpdateNPCOutput{NPC: updateOutput.NPC}, nil
}

func (o *orchestrator) DeleteNPC(ctx context.Context, input *DeleteNPCInput) (*DeleteNPCOutput, error) {
	if input == nil || input.ID == 0 {
		return nil, errors.InvalidArgument("npc ID is required")
	}

	if _, err := o.npcRepo.Delete(ctx, npcrepo.DeleteInput{ID: input.ID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete npc %d", input.ID)
	}

	return &DeleteNPCOutput{}, nil
}

func (o *orchestrator) ListNPCs(ctx context.Context, _ *ListNPCsInput) (*ListNPCsOutput, error) {
	listOutput, err := o.npcRepo.List(ctx, npcrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list npcs")
	}

	return &ListNPCsOutput{NPCs: listOutput.NPCs}, nil
}
