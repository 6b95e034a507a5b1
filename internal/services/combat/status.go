package combat

import (
	"github.com/KirkDiggler/storyforge/internal/entities"
)

// ApplyStatusEffect attaches an effect to a participant. Re-applying a
// same-named effect below its stack cap adds a stack and extends the
// duration to the longer of the two; at the cap the application is
// silently ignored.
func (s *service) ApplyStatusEffect(participant *entities.CombatParticipant, effect *entities.StatusEffect) {
	if participant == nil || effect == nil || effect.Name == "" {
		return
	}

	for _, existing := range participant.StatusEffects {
		if existing == nil || existing.Name != effect.Name {
			continue
		}
		if existing.Stacks >= existing.MaxStacks {
			return
		}
		existing.Stacks++
		if effect.Duration > existing.Duration {
			existing.Duration = effect.Duration
		}
		return
	}

	applied := effect.Clone()
	if applied.Stacks < 1 {
		applied.Stacks = 1
	}
	if applied.MaxStacks < 1 {
		applied.MaxStacks = 1
	}
	participant.StatusEffects = append(participant.StatusEffects, applied)
}

// TickStatusEffects runs one tick for every effect whose timing matches
// the current phase edge. Health and mana modifiers are instant and
// mutate the participant; all other stats are passive and only feed the
// damage/healing calculators. Each tick decrements duration and expires
// effects that reach zero.
func (s *service) TickStatusEffects(participant *entities.CombatParticipant, timing entities.TickTiming) {
	if participant == nil {
		return
	}

	remaining := participant.StatusEffects[:0]
	for _, effect := range participant.StatusEffects {
		if effect == nil {
			continue
		}
		if effect.TickTiming != timing {
			remaining = append(remaining, effect)
			continue
		}

		if delta := effect.ModifierTotal(entities.StatHealth); delta != 0 {
			participant.Health += delta
			if participant.Health < 0 {
				participant.Health = 0
			}
			if participant.Health > participant.MaxHealth {
				participant.Health = participant.MaxHealth
			}
		}
		if delta := effect.ModifierTotal(entities.StatMana); delta != 0 {
			participant.Mana += delta
			if participant.Mana < 0 {
				participant.Mana = 0
			}
			if participant.Mana > participant.MaxMana {
				participant.Mana = participant.MaxMana
			}
		}

		effect.Duration--
		if effect.Duration > 0 {
			remaining = append(remaining, effect)
		}
	}
	participant.StatusEffects = remaining
}
