// Package entities defines the persistent records of the companion service
package entities

// Character classes. Base is the sentinel class whose abilities any
// character may use.
const (
	ClassBase    = "Base"
	ClassWarrior = "Guerrero"
	ClassRogue   = "Pícaro"
	ClassMage    = "Mago"
)

// Weapons that grant the bladed damage bonus
const (
	WeaponSword   = "Espada"
	WeaponDaggers = "Dagas"
)

// Power affinities
const (
	PowerPyro      = "Pyro"
	PowerHydro     = "Hydro"
	PowerGeo       = "Geo"
	PowerElectro   = "Electro"
	PowerCryo      = "Cryo"
	PowerNatura    = "Natura"
	PowerAero      = "Aero"
	PowerLight     = "Light"
	PowerDark      = "Dark"
	PowerUniversal = "Universal"
)

// Powers lists every known power affinity
var Powers = []string{
	PowerPyro, PowerHydro, PowerGeo, PowerElectro, PowerCryo,
	PowerNatura, PowerAero, PowerLight, PowerDark, PowerUniversal,
}

// Profile is a player's persistent character record. One exists per
// authenticated user; it is created with placeholder values at signup and
// only hard-deleted through the admin user-deletion cascade.
//
// Attack is a pointer because "attack not set" is meaningful: damage is
// never computed for a profile without an attack stat.
type Profile struct {
	ID                string `json:"id"`
	Username          string `json:"username"`
	Clase             string `json:"clase"`
	Power             string `json:"power"`
	Level             int32  `json:"level"`
	Weapon            string `json:"weapon"`
	CurrentHP         int32  `json:"current_hp"`
	TotalHP           int32  `json:"total_hp"`
	Attack            *int32 `json:"attack,omitempty"`
	Defense           int32  `json:"defense"`
	SpecialAttack     int32  `json:"special_attack"`
	SpecialDefense    int32  `json:"special_defense"`
	Speed             int32  `json:"speed"`
	CurrentExperience int32  `json:"current_experience"`
	ImageURL          string `json:"image_url,omitempty"`
	UpdatedAt         int64  `json:"updated_at,omitempty"`
}

// HasBladedWeapon reports whether the profile's weapon grants the bladed
// damage bonus
func (p *Profile) HasBladedWeapon() bool {
	return p.Weapon == WeaponSword || p.Weapon == WeaponDaggers
}
