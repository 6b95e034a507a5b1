package combat

import (
	"math"

	"github.com/KirkDiggler/storyforge/internal/entities"
)

// CalculateDamage computes the full additive-term breakdown for an
// attack or a damaging skill. Each term is independently reported so
// callers and tests can see exactly where damage came from.
//
// damage = (base + attrMod + weaponBonus + skillBonus + statusMod + envMod)
//          * critMultiplier - (resistance + armorReduction),
// floored at 0 and truncated to an integer.
func (s *service) CalculateDamage(state *entities.CombatState, attacker, target *entities.CombatParticipant, skill *entities.CombatSkill) *entities.DamageResult {
	result := &entities.DamageResult{CritMultiplier: 1.0}
	if attacker == nil || target == nil {
		return result
	}

	// Base: skill power for skills, weapon damage for armed basic
	// attacks, half the attack stat when unarmed.
	switch {
	case skill != nil:
		result.BaseDamage = skill.Power
	case attacker.Weapon != nil:
		result.BaseDamage = attacker.Weapon.Damage
	default:
		result.BaseDamage = roundHalfUp(float64(attacker.Attack) * 0.5)
	}

	result.AttributeModifier = roundHalfUp(float64(attacker.Attack) * 0.1)

	if attacker.Weapon != nil {
		result.WeaponBonus = roundHalfUp(float64(attacker.Weapon.Accuracy) * 0.05)
	}

	if skill != nil {
		result.SkillBonus = roundHalfUp(float64(attacker.Attack) * 0.05)
	}

	result.StatusModifier = attacker.StatusModifierTotal(entities.StatDamage)
	result.EnvironmentalModifier = environmentalDamage(state)

	// Critical hit is a Bernoulli trial against the effective crit
	// chance percentage.
	critChance := attacker.CritChance
	if attacker.Weapon != nil {
		critChance += attacker.Weapon.CritBonus
	}
	critChance += attacker.StatusModifierTotal(entities.StatCritChance)

	if s.rng.Float64()*100 < float64(critChance) {
		result.IsCritical = true
		result.CritMultiplier = attacker.CritMultiplier
		if result.CritMultiplier < 1.0 {
			result.CritMultiplier = 1.0
		}
	}

	additive := result.BaseDamage + result.AttributeModifier + result.WeaponBonus +
		result.SkillBonus + result.StatusModifier + result.EnvironmentalModifier

	result.PreMitigation = int(math.Floor(float64(additive) * result.CritMultiplier))
	if result.PreMitigation < 0 {
		result.PreMitigation = 0
	}

	result.Resistance = roundHalfUp(float64(target.Defense)*0.5) +
		target.StatusModifierTotal(entities.StatResistance)
	if target.Armor != nil {
		result.ArmorReduction = target.Armor.DamageReduction
	}

	final := result.PreMitigation - result.Resistance - result.ArmorReduction
	if final < 0 {
		final = 0
	}
	result.FinalDamage = final

	// Blocked means mitigation swallowed a real hit, which is distinct
	// from no damage having been attempted.
	result.IsBlocked = result.FinalDamage == 0 && result.PreMitigation > 0

	return result
}

// environmentalDamage sums active damage-type environment effects
func environmentalDamage(state *entities.CombatState) int {
	if state == nil {
		return 0
	}
	total := 0
	for _, e := range state.Environment {
		if e != nil && e.Type == "damage" {
			total += e.Value
		}
	}
	return total
}

func roundHalfUp(v float64) int {
	return int(math.Round(v))
}
