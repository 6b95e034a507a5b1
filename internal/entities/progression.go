package entities

// AttributeCeiling caps the cumulative points that may ever be allocated
// to a single attribute. The cap applies to the progression delta, not
// the attribute total.
const AttributeCeiling = 100

// ProgressionPoints are the four typed currencies earned on level-up
type ProgressionPoints struct {
	Attribute      int `json:"attribute"`
	Skill          int `json:"skill"`
	Specialization int `json:"specialization"`
	Talent         int `json:"talent"`
}

// Add accumulates another reward bundle into this one
func (p *ProgressionPoints) Add(other ProgressionPoints) {
	p.Attribute += other.Attribute
	p.Skill += other.Skill
	p.Specialization += other.Specialization
	p.Talent += other.Talent
}

func (p *ProgressionPoints) clampNonNegative() {
	if p.Attribute < 0 {
		p.Attribute = 0
	}
	if p.Skill < 0 {
		p.Skill = 0
	}
	if p.Specialization < 0 {
		p.Specialization = 0
	}
	if p.Talent < 0 {
		p.Talent = 0
	}
}

// AttributeProgression records the per-attribute allocated deltas plus
// the flat bonus accumulators granted by skills and specializations.
type AttributeProgression struct {
	Allocated map[Attribute]int `json:"allocated"`

	HealthBonus int `json:"health_bonus"`
	ManaBonus   int `json:"mana_bonus"`
	CarryBonus  int `json:"carry_bonus"`
}

// Clone returns a deep copy of the progression record
func (p AttributeProgression) Clone() AttributeProgression {
	out := p
	out.Allocated = make(map[Attribute]int, len(p.Allocated))
	for k, v := range p.Allocated {
		out.Allocated[k] = v
	}
	return out
}

// ActiveSpecialization is one activated specialization on a character
type ActiveSpecialization struct {
	SpecializationID string `json:"specialization_id"`
	ProgressionLevel int    `json:"progression_level"`
}
