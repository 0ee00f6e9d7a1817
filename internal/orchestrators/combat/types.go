package combat

// ResolveAttackInput defines the input for resolving an ability attack
type ResolveAttackInput struct {
	ProfileID string
	AbilityID string
}

// ResolveAttackOutput defines the output for resolving an ability attack.
// Damage is nil when the profile has no attack stat; the roll alone is
// reported in that case.
type ResolveAttackOutput struct {
	Roll          int32
	Damage        *int32
	RemainingUses int32
}
