package combat

import (
	"github.com/KirkDiggler/storyforge/internal/entities"
)

// CalculateHealing mirrors the damage calculator with its own additive
// terms, then clamps the result to the target's missing health. The
// clamped-off remainder is reported as overheal, never dropped.
func (s *service) CalculateHealing(actor, target *entities.CombatParticipant, baseHealing int, fromSkill bool) *entities.HealingResult {
	result := &entities.HealingResult{}
	if actor == nil || target == nil {
		return result
	}

	result.BaseHealing = baseHealing
	result.AttributeModifier = roundHalfUp(float64(actor.Attack) * 0.1)
	if fromSkill {
		result.SkillBonus = roundHalfUp(float64(actor.Attack) * 0.05)
	}
	result.StatusModifier = actor.StatusModifierTotal(entities.StatHealing)

	total := result.BaseHealing + result.AttributeModifier + result.SkillBonus + result.StatusModifier
	if total < 0 {
		total = 0
	}

	missing := target.MaxHealth - target.Health
	if missing < 0 {
		missing = 0
	}

	if total > missing {
		result.FinalHealing = missing
		result.Overheal = total - missing
	} else {
		result.FinalHealing = total
	}

	return result
}
