package entities

// TickTiming says at which edge of a participant's turn an effect ticks
type TickTiming string

const (
	TickStartTurn TickTiming = "start_turn"
	TickEndTurn   TickTiming = "end_turn"
)

// Well-known modifier stats. Health and mana modifiers are instant:
// each tick mutates the participant directly. Every other stat is a
// passive modifier consumed by the damage/healing calculators and is
// never written onto the participant.
const (
	StatHealth     = "health"
	StatMana       = "mana"
	StatDamage     = "damage"
	StatHealing    = "healing"
	StatCritChance = "crit_chance"
	StatResistance = "resistance"
)

// StatModifier is a single stat delta carried by a status effect
type StatModifier struct {
	Stat  string `json:"stat"`
	Value int    `json:"value"`
}

// StatusEffect is a timed, stacking modifier attached to a combat
// participant.
type StatusEffect struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Duration    int            `json:"duration"`
	Stacks      int            `json:"stacks"`
	MaxStacks   int            `json:"max_stacks"`
	TickTiming  TickTiming     `json:"tick_timing"`
	Modifiers   []StatModifier `json:"modifiers"`
}

// Clone returns a deep copy of the effect
func (e *StatusEffect) Clone() *StatusEffect {
	if e == nil {
		return nil
	}
	out := *e
	out.Modifiers = append([]StatModifier(nil), e.Modifiers...)
	return &out
}

// ModifierTotal sums the effect's modifiers for one stat, scaled by the
// current stack count.
func (e *StatusEffect) ModifierTotal(stat string) int {
	stacks := e.Stacks
	if stacks < 1 {
		stacks = 1
	}

	total := 0
	for _, m := range e.Modifiers {
		if m.Stat == stat {
			total += m.Value * stacks
		}
	}
	return total
}
