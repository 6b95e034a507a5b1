package entities

import (
	"time"
)

// ParticipantType represents which side a combat participant fights for
type ParticipantType string

const (
	ParticipantTypePlayer ParticipantType = "player"
	ParticipantTypeAlly   ParticipantType = "ally"
	ParticipantTypeEnemy  ParticipantType = "enemy"
)

// CombatPhase is derived from the participant currently holding the
// turn; it is never tracked independently.
type CombatPhase string

const (
	PhasePlayerTurn CombatPhase = "player_turn"
	PhaseEnemyTurn  CombatPhase = "enemy_turn"
)

// ActionType enumerates the combat actions a participant may take
type ActionType string

const (
	ActionAttack ActionType = "attack"
	ActionSkill  ActionType = "skill"
	ActionItem   ActionType = "item"
	ActionDefend ActionType = "defend"
	ActionMove   ActionType = "move"
	ActionFlee   ActionType = "flee"
	ActionWait   ActionType = "wait"
)

// TargetType declares which participants a skill may legally target
type TargetType string

const (
	TargetSelf        TargetType = "self"
	TargetSingleAlly  TargetType = "single_ally"
	TargetSingleEnemy TargetType = "single_enemy"
	TargetAny         TargetType = "any"
)

// Position is a grid location used by move actions
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// CombatSkill is a usable skill carried by a participant, with its own
// cooldown tracking.
type CombatSkill struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	TargetType      TargetType `json:"target_type"`
	ActionPointCost int        `json:"action_point_cost"`
	ManaCost        int        `json:"mana_cost"`
	Cooldown        int        `json:"cooldown"`
	CurrentCooldown int        `json:"current_cooldown"`

	// Power is the skill's base damage, or base healing when Healing is set
	Power   int  `json:"power"`
	Healing bool `json:"healing"`

	// AppliesEffect, when set, is attached to the target on a successful use
	AppliesEffect *StatusEffect `json:"applies_effect,omitempty"`
}

// CombatItem is a consumable carried by a participant
type CombatItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`

	HealAmount int `json:"heal_amount"`
	ManaAmount int `json:"mana_amount"`

	AppliesEffect *StatusEffect `json:"applies_effect,omitempty"`
}

// CombatParticipant is one combatant in an encounter. Dead participants
// stay in the list for history and resurrection; end-condition checks
// filter on health > 0.
type CombatParticipant struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Type ParticipantType `json:"type"`

	Health    int `json:"health"`
	MaxHealth int `json:"max_health"`
	Mana      int `json:"mana"`
	MaxMana   int `json:"max_mana"`

	Attack         int     `json:"attack"`
	Defense        int     `json:"defense"`
	Speed          int     `json:"speed"`
	Accuracy       int     `json:"accuracy"`
	Evasion        int     `json:"evasion"`
	CritChance     int     `json:"crit_chance"`
	CritMultiplier float64 `json:"crit_multiplier"`

	ActionPoints    int `json:"action_points"`
	MaxActionPoints int `json:"max_action_points"`

	Position Position `json:"position"`

	Weapon *Weapon `json:"weapon,omitempty"`
	Armor  *Armor  `json:"armor,omitempty"`

	StatusEffects []*StatusEffect `json:"status_effects"`
	Skills        []*CombatSkill  `json:"skills"`
	Items         []*CombatItem   `json:"items"`
}

// IsAlive returns true if the participant has more than 0 health
func (p *CombatParticipant) IsAlive() bool {
	return p.Health > 0
}

// Skill returns the participant's skill with the given id, or nil
func (p *CombatParticipant) Skill(id string) *CombatSkill {
	for _, s := range p.Skills {
		if s != nil && s.ID == id {
			return s
		}
	}
	return nil
}

// Item returns the participant's item with the given id, or nil
func (p *CombatParticipant) Item(id string) *CombatItem {
	for _, it := range p.Items {
		if it != nil && it.ID == id {
			return it
		}
	}
	return nil
}

// StatusModifierTotal sums one passive stat across all active effects
func (p *CombatParticipant) StatusModifierTotal(stat string) int {
	total := 0
	for _, e := range p.StatusEffects {
		if e != nil {
			total += e.ModifierTotal(stat)
		}
	}
	return total
}

// ApplyDamage reduces health, clamped at 0
func (p *CombatParticipant) ApplyDamage(damage int) {
	if damage < 0 {
		damage = 0
	}
	p.Health -= damage
	if p.Health < 0 {
		p.Health = 0
	}
}

// Heal restores health, clamped at max
func (p *CombatParticipant) Heal(amount int) {
	if amount < 0 {
		amount = 0
	}
	p.Health += amount
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
}

// Clone returns a deep copy of the participant
func (p *CombatParticipant) Clone() *CombatParticipant {
	if p == nil {
		return nil
	}
	out := *p

	if p.Weapon != nil {
		w := *p.Weapon
		out.Weapon = &w
	}
	if p.Armor != nil {
		a := *p.Armor
		out.Armor = &a
	}

	out.StatusEffects = make([]*StatusEffect, len(p.StatusEffects))
	for i, e := range p.StatusEffects {
		out.StatusEffects[i] = e.Clone()
	}

	out.Skills = make([]*CombatSkill, len(p.Skills))
	for i, s := range p.Skills {
		if s != nil {
			sc := *s
			if s.AppliesEffect != nil {
				sc.AppliesEffect = s.AppliesEffect.Clone()
			}
			out.Skills[i] = &sc
		}
	}

	out.Items = make([]*CombatItem, len(p.Items))
	for i, it := range p.Items {
		if it != nil {
			ic := *it
			if it.AppliesEffect != nil {
				ic.AppliesEffect = it.AppliesEffect.Clone()
			}
			out.Items[i] = &ic
		}
	}

	return &out
}

// VictoryConditionType enumerates supported victory predicates
type VictoryConditionType string

const (
	VictoryDefeatAllEnemies VictoryConditionType = "defeat_all_enemies"
	VictorySurviveTurns     VictoryConditionType = "survive_turns"
)

// DefeatConditionType enumerates supported defeat predicates
type DefeatConditionType string

const (
	DefeatPlayerDeath DefeatConditionType = "player_death"
	DefeatTimeLimit   DefeatConditionType = "time_limit"
)

// VictoryCondition is a declarative victory predicate descriptor
type VictoryCondition struct {
	Type VictoryConditionType `json:"type"`

	// TargetRounds is the round count for survive_turns
	TargetRounds int `json:"target_rounds,omitempty"`
}

// DefeatCondition is a declarative defeat predicate descriptor
type DefeatCondition struct {
	Type DefeatConditionType `json:"type"`

	// TimeLimitSeconds is the wall-clock budget for time_limit
	TimeLimitSeconds int `json:"time_limit_seconds,omitempty"`
}

// EnvironmentEffect is an encounter-wide modifier, e.g. a burning field
// adding flat damage to every attack.
type EnvironmentEffect struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value int    `json:"value"`
}

// ActionRecord is one resolved action in the append-only history
type ActionRecord struct {
	Round       int        `json:"round"`
	ActorID     string     `json:"actor_id"`
	ActionType  ActionType `json:"action_type"`
	TargetID    string     `json:"target_id,omitempty"`
	Damage      int        `json:"damage,omitempty"`
	Healing     int        `json:"healing,omitempty"`
	Critical    bool       `json:"critical,omitempty"`
	Blocked     bool       `json:"blocked,omitempty"`
	Description string     `json:"description"`
	Timestamp   time.Time  `json:"timestamp"`
}

// CombatState is the per-encounter aggregate. It is created fresh at
// combat start and discarded at combat end.
type CombatState struct {
	ID            string                `json:"id"`
	Participants  []*CombatParticipant  `json:"participants"`
	TurnOrder     []string              `json:"turn_order"`
	CurrentTurnID string                `json:"current_turn_id"`
	Round         int                   `json:"round"`
	StartedAt     time.Time             `json:"started_at"`
	Environment   []*EnvironmentEffect  `json:"environment,omitempty"`
	Victory       []VictoryCondition    `json:"victory_conditions"`
	Defeat        []DefeatCondition     `json:"defeat_conditions"`
	ActionHistory []ActionRecord        `json:"action_history"`
	Ended         bool                  `json:"ended"`
	Outcome       string                `json:"outcome,omitempty"`
}

// Participant returns the participant with the given id, or nil
func (s *CombatState) Participant(id string) *CombatParticipant {
	for _, p := range s.Participants {
		if p != nil && p.ID == id {
			return p
		}
	}
	return nil
}

// CurrentParticipant returns the participant holding the turn, or nil
func (s *CombatState) CurrentParticipant() *CombatParticipant {
	return s.Participant(s.CurrentTurnID)
}

// Phase derives the combat phase from the current turn holder. Allies
// act during the player phase.
func (s *CombatState) Phase() CombatPhase {
	current := s.CurrentParticipant()
	if current != nil && current.Type == ParticipantTypeEnemy {
		return PhaseEnemyTurn
	}
	return PhasePlayerTurn
}

// AliveOfType counts living participants of one type
func (s *CombatState) AliveOfType(t ParticipantType) int {
	count := 0
	for _, p := range s.Participants {
		if p != nil && p.Type == t && p.IsAlive() {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the combat state
func (s *CombatState) Clone() *CombatState {
	if s == nil {
		return nil
	}
	out := *s

	out.Participants = make([]*CombatParticipant, len(s.Participants))
	for i, p := range s.Participants {
		out.Participants[i] = p.Clone()
	}

	out.TurnOrder = append([]string(nil), s.TurnOrder...)

	out.Environment = make([]*EnvironmentEffect, len(s.Environment))
	for i, e := range s.Environment {
		if e != nil {
			ec := *e
			out.Environment[i] = &ec
		}
	}

	out.Victory = append([]VictoryCondition(nil), s.Victory...)
	out.Defeat = append([]DefeatCondition(nil), s.Defeat...)
	out.ActionHistory = append([]ActionRecord(nil), s.ActionHistory...)

	return &out
}

// CombatAction is a single intended action submitted to the combat engine
type CombatAction struct {
	Type            ActionType `json:"type"`
	ActorID         string     `json:"actor_id"`
	TargetID        string     `json:"target_id,omitempty"`
	TargetPosition  *Position  `json:"target_position,omitempty"`
	SkillID         string     `json:"skill_id,omitempty"`
	ItemID          string     `json:"item_id,omitempty"`
	ActionPointCost int        `json:"action_point_cost"`
	ManaCost        int        `json:"mana_cost"`
}

// DamageResult is the full breakdown of one damage calculation
type DamageResult struct {
	BaseDamage            int     `json:"base_damage"`
	AttributeModifier     int     `json:"attribute_modifier"`
	WeaponBonus           int     `json:"weapon_bonus"`
	SkillBonus            int     `json:"skill_bonus"`
	StatusModifier        int     `json:"status_modifier"`
	EnvironmentalModifier int     `json:"environmental_modifier"`
	IsCritical            bool    `json:"is_critical"`
	CritMultiplier        float64 `json:"crit_multiplier"`
	PreMitigation         int     `json:"pre_mitigation"`
	Resistance            int     `json:"resistance"`
	ArmorReduction        int     `json:"armor_reduction"`
	FinalDamage           int     `json:"final_damage"`

	// IsBlocked is true when mitigation absorbed a real hit entirely,
	// as opposed to no damage having been attempted.
	IsBlocked bool `json:"is_blocked"`
}

// HealingResult is the full breakdown of one healing calculation
type HealingResult struct {
	BaseHealing       int `json:"base_healing"`
	AttributeModifier int `json:"attribute_modifier"`
	SkillBonus        int `json:"skill_bonus"`
	StatusModifier    int `json:"status_modifier"`
	FinalHealing      int `json:"final_healing"`

	// Overheal is the portion clamped off by the target's missing
	// health; it is reported, never silently dropped.
	Overheal int `json:"overheal"`
}

// ActionResult describes what one processed action did
type ActionResult struct {
	Valid          bool           `json:"valid"`
	Reason         string         `json:"reason,omitempty"`
	Damage         *DamageResult  `json:"damage,omitempty"`
	Healing        *HealingResult `json:"healing,omitempty"`
	AppliedEffects []string       `json:"applied_effects,omitempty"`
	Fled           bool           `json:"fled,omitempty"`
	Description    string         `json:"description,omitempty"`
}

// CombatEndResult reports which end condition fired
type CombatEndResult struct {
	Victory   bool   `json:"victory"`
	Condition string `json:"condition"`
	Reason    string `json:"reason"`
}

// CombatTurnResult is the structured outcome of processing one action
type CombatTurnResult struct {
	Success      bool             `json:"success"`
	State        *CombatState     `json:"state"`
	ActionResult *ActionResult    `json:"action_result"`
	CombatEnd    *CombatEndResult `json:"combat_end,omitempty"`
	NextPhase    CombatPhase      `json:"next_phase"`
}
