package entities

// Weapon is a read-only equipment stat block supplied by the host app
type Weapon struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Damage   int    `json:"damage"`
	Accuracy int    `json:"accuracy"`

	// CritBonus is a flat addition to the wielder's effective critical
	// chance percentage.
	CritBonus int `json:"crit_bonus"`
}

// Armor is a read-only equipment stat block supplied by the host app
type Armor struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// DamageReduction is subtracted flat from incoming damage after the
	// wearer's resistance.
	DamageReduction int `json:"damage_reduction"`
}
