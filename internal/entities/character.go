package entities

// Attribute identifies one of the six core attributes
type Attribute string

const (
	AttributeStrength     Attribute = "strength"
	AttributeDexterity    Attribute = "dexterity"
	AttributeConstitution Attribute = "constitution"
	AttributeIntelligence Attribute = "intelligence"
	AttributeWisdom       Attribute = "wisdom"
	AttributeCharisma     Attribute = "charisma"
)

// Attributes returns the six core attributes in canonical order
func Attributes() []Attribute {
	return []Attribute{
		AttributeStrength,
		AttributeDexterity,
		AttributeConstitution,
		AttributeIntelligence,
		AttributeWisdom,
		AttributeCharisma,
	}
}

// MaxLevel is the hard level cap. The experience curve is exponential,
// so the cap also keeps the XP math inside int range.
const MaxLevel = 100

// CharacterProfile is the mutable aggregate root shared by the
// progression and combat engines. It is plain data; engines return
// modified copies rather than mutating in place.
type CharacterProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Class string `json:"class"`

	// Vitals. Current values are always clamped to [0, max].
	Health    int `json:"health"`
	MaxHealth int `json:"max_health"`
	Mana      int `json:"mana"`
	MaxMana   int `json:"max_mana"`

	// BaseMaxHealth and BaseMaxMana are the pre-attribute baselines the
	// derived-stat formulas build on.
	BaseMaxHealth int `json:"base_max_health"`
	BaseMaxMana   int `json:"base_max_mana"`

	// BaseAttributes are the character's unallocated core attributes.
	// Allocated points live in Progression, never here.
	BaseAttributes map[Attribute]int `json:"base_attributes"`

	// Derived stats are always recomputed from base attributes plus
	// progression deltas, never hand-edited.
	Derived DerivedStats `json:"derived"`

	Level                 int `json:"level"`
	ExperiencePoints      int `json:"experience_points"`
	ExperienceToNextLevel int `json:"experience_to_next_level"`
	TotalExperienceEarned int `json:"total_experience_earned"`

	ProgressionPoints     ProgressionPoints      `json:"progression_points"`
	Progression           AttributeProgression   `json:"attribute_progression"`
	PurchasedSkillNodes   []string               `json:"purchased_skill_nodes"`
	ActiveSpecializations []ActiveSpecialization `json:"active_specializations"`
	PurchasedTalents      []string               `json:"purchased_talents"`
	CompletedMilestones   []string               `json:"completed_milestones"`
}

// DerivedStats is the full set of combat-facing stats computed from
// base attributes and progression deltas.
type DerivedStats struct {
	MaxHealth          int     `json:"max_health"`
	MaxMana            int     `json:"max_mana"`
	Attack             int     `json:"attack"`
	Defense            int     `json:"defense"`
	Speed              int     `json:"speed"`
	Accuracy           int     `json:"accuracy"`
	Evasion            int     `json:"evasion"`
	CriticalChance     int     `json:"critical_chance"`
	CriticalMultiplier float64 `json:"critical_multiplier"`
	CarryCapacity      int     `json:"carry_capacity"`
	MovementSpeed      int     `json:"movement_speed"`
	InitiativeBonus    int     `json:"initiative_bonus"`
}

// HasPurchasedNode reports whether the given skill node id has been purchased
func (c *CharacterProfile) HasPurchasedNode(nodeID string) bool {
	for _, id := range c.PurchasedSkillNodes {
		if id == nodeID {
			return true
		}
	}
	return false
}

// HasActiveSpecialization reports whether the given specialization is active
func (c *CharacterProfile) HasActiveSpecialization(specID string) bool {
	for _, spec := range c.ActiveSpecializations {
		if spec.SpecializationID == specID {
			return true
		}
	}
	return false
}

// TotalAttribute returns the effective value of an attribute: base plus
// allocated progression delta, floored at 1.
func (c *CharacterProfile) TotalAttribute(attr Attribute) int {
	total := c.BaseAttributes[attr] + c.Progression.Allocated[attr]
	if total < 1 {
		return 1
	}
	return total
}

// ClampVitals restores the current-value-within-max invariant after any
// mutation of vitals or maxima.
func (c *CharacterProfile) ClampVitals() {
	if c.Health < 0 {
		c.Health = 0
	}
	if c.Health > c.MaxHealth {
		c.Health = c.MaxHealth
	}
	if c.Mana < 0 {
		c.Mana = 0
	}
	if c.Mana > c.MaxMana {
		c.Mana = c.MaxMana
	}
}

// Clone returns a deep copy of the character profile
func (c *CharacterProfile) Clone() *CharacterProfile {
	if c == nil {
		return nil
	}

	out := *c

	out.BaseAttributes = make(map[Attribute]int, len(c.BaseAttributes))
	for k, v := range c.BaseAttributes {
		out.BaseAttributes[k] = v
	}

	out.Progression = c.Progression.Clone()

	out.PurchasedSkillNodes = append([]string(nil), c.PurchasedSkillNodes...)
	out.PurchasedTalents = append([]string(nil), c.PurchasedTalents...)
	out.CompletedMilestones = append([]string(nil), c.CompletedMilestones...)

	out.ActiveSpecializations = make([]ActiveSpecialization, len(c.ActiveSpecializations))
	copy(out.ActiveSpecializations, c.ActiveSpecializations)

	return &out
}

// NormalizeCharacter fills every optional substructure of a raw profile
// so downstream engine code can assume fully-populated records. It is
// the single defaulting point for the data model and is idempotent.
func NormalizeCharacter(c *CharacterProfile) *CharacterProfile {
	if c == nil {
		return nil
	}

	if c.Level < 1 {
		c.Level = 1
	}
	if c.ExperiencePoints < 0 {
		c.ExperiencePoints = 0
	}
	if c.TotalExperienceEarned < c.ExperiencePoints {
		c.TotalExperienceEarned = c.ExperiencePoints
	}

	if c.BaseAttributes == nil {
		c.BaseAttributes = make(map[Attribute]int, 6)
	}
	for _, attr := range Attributes() {
		if c.BaseAttributes[attr] < 1 {
			c.BaseAttributes[attr] = 1
		}
	}

	if c.Progression.Allocated == nil {
		c.Progression.Allocated = make(map[Attribute]int, 6)
	}

	if c.PurchasedSkillNodes == nil {
		c.PurchasedSkillNodes = []string{}
	}
	if c.ActiveSpecializations == nil {
		c.ActiveSpecializations = []ActiveSpecialization{}
	}
	if c.PurchasedTalents == nil {
		c.PurchasedTalents = []string{}
	}
	if c.CompletedMilestones == nil {
		c.CompletedMilestones = []string{}
	}

	c.ProgressionPoints.clampNonNegative()

	return c
}
