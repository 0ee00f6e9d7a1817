package entities

// Ability is a global catalog entry gated by class, power affinity, and
// minimum level. CurrentUses on the catalog record is a template default
// for newly granted profiles; the authoritative per-profile counter lives
// on AbilityGrant.
type Ability struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Clase       string `json:"clase"`
	Power       string `json:"power"`
	Level       int32  `json:"level"`
	TotalUses   int32  `json:"total_uses"`
	CurrentUses int32  `json:"current_uses"`
	Dice        string `json:"dice"`
	ScalesWith  string `json:"scales_with"`
}

// EligibleFor reports whether a profile meets the ability's gates: minimum
// level, exact power affinity, and class membership (the profile's own
// class or the Base sentinel).
func (a *Ability) EligibleFor(p *Profile) bool {
	if a.Level > p.Level {
		return false
	}
	if a.Power != p.Power {
		return false
	}
	return a.Clase == p.Clase || a.Clase == ClassBase
}

// AbilityGrant links a profile to an ability with that profile's remaining
// use count. It is the single source of truth for how many times the
// profile may still invoke the ability; 0 <= CurrentUses <= TotalUses of
// the granted ability.
type AbilityGrant struct {
	ProfileID   string `json:"profile_id"`
	AbilityID   string `json:"hability_id"`
	CurrentUses int32  `json:"current_uses"`
}
