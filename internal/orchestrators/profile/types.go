package profile

import (
	"github.com/tavernkeep/companion-api/internal/entities"
)

// SignupInput defines the input for provisioning a new user
type SignupInput struct {
	UserID   string
	Email    string
	Username string
}

// SignupOutput defines the output for provisioning a new user
type SignupOutput struct {
	User    *entities.User
	Profile *entities.Profile
}

// GetProfileInput defines the input for getting a profile
type GetProfileInput struct {
	ID string
}

// GetProfileOutput defines the output for getting a profile
type GetProfileOutput struct {
	Profile *entities.Profile
}

// ListProfilesInput defines the input for listing profiles
type ListProfilesInput struct{}

// ListProfilesOutput defines the output for listing profiles
type ListProfilesOutput struct {
	Profiles []*entities.Profile
}

// UpdateStatsInput defines the input for a player's own stat edit. Nil
// fields are left untouched.
type UpdateStatsInput struct {
	ProfileID         string
	CurrentHP         *int32
	TotalHP           *int32
	Attack            *int32
	Defense           *int32
	SpecialAttack     *int32
	SpecialDefense    *int32
	Speed             *int32
	CurrentExperience *int32
}

// UpdateStatsOutput defines the output for a stat edit
type UpdateStatsOutput struct {
	Profile *entities.Profile
}

// UpdateProfileInput defines the input for an admin profile edit
type UpdateProfileInput struct {
	Profile *entities.Profile
}

// UpdateProfileOutput defines the output for an admin profile edit
type UpdateProfileOutput struct {
	Profile *entities.Profile
}

// DeleteUserInput defines the input for the user-deletion cascade
type DeleteUserInput struct {
	UserID string
}

// DeleteUserOutput reports what the cascade removed
type DeleteUserOutput struct {
	GrantsDeleted int
	ItemsDeleted  int
}

// ListUsersInput defines the input for the admin user listing
type ListUsersInput struct{}

// ListUsersOutput defines the output for the admin user listing
type ListUsersOutput struct {
	Users []*entities.User
}

// CreateItemInput defines the input for adding an inventory item
type CreateItemInput struct {
	ProfileID   string
	Name        string
	Description string
	Quantity    int32
	Value       int32
	ImageURL    string
}

// CreateItemOutput defines the output for adding an inventory item
type CreateItemOutput struct {
	Item *entities.Item
}

// ListItemsInput defines the input for listing a profile's items
type ListItemsInput struct {
	ProfileID string
}

// ListItemsOutput defines the output for listing a profile's items
type ListItemsOutput struct {
	Items []*entities.Item
}

// DeleteItemInput defines the input for removing an inventory item
type DeleteItemInput struct {
	ItemID int64
}

// DeleteItemOutput defines the output for removing an inventory item
type DeleteItemOutput struct{}

// CreateNPCInput defines the input for creating an NPC
type CreateNPCInput struct {
	Name        string
	Description string
	ImageURL    string
}

// CreateNPCOutput defines the output for creating an NPC
type CreateNPCOutput struct {
	NPC *entities.NPC
}

// UpdateNPCInput defines the input for updating an NPC
type UpdateNPCInput struct {
	NPC *entities.NPC
}

// UpdateNPCOutput defines the output for updating an NPC
type UpdateNPCOutput struct {
	NPC *entities.NPC
}

// DeleteNPCInput defines the input for deleting an NPC
type DeleteNPCInput struct {
	ID int64
}

// DeleteNPCOutput defines the output for deleting an NPC
type DeleteNPCOutput struct{}

// ListNPCsInput defines the input for listing NPCs
type ListNPCsInput struct{}

// ListNPCsOutput defines the output for listing NPCs
type ListNPCsOutput struct {
	NPCs []*entities.NPC
}
