package progression

import (
	"math"

	"github.com/KirkDiggler/storyforge/internal/entities"
	apperr "github.com/KirkDiggler/storyforge/internal/errors"
)

// AllocateAttributePoint adds points to one attribute's cumulative
// progression delta. The per-attribute ceiling applies to the delta,
// not the attribute total. The caller owns pool deduction.
func (s *service) AllocateAttributePoint(progression entities.AttributeProgression, attr entities.Attribute, points int) (entities.AttributeProgression, error) {
	if points < 0 {
		return progression, apperr.NegativePointsf("cannot allocate %d points to %s", points, attr)
	}

	out := progression.Clone()
	if out.Allocated == nil {
		out.Allocated = make(map[entities.Attribute]int, 6)
	}

	newTotal := out.Allocated[attr] + points
	if newTotal > entities.AttributeCeiling {
		return progression, apperr.AttributeCeilingExceededf(
			"allocating %d points to %s would reach %d, past the ceiling of %d",
			points, attr, newTotal, entities.AttributeCeiling).
			WithMeta("attribute", string(attr))
	}

	out.Allocated[attr] = newTotal
	return out, nil
}

// roundHalfUp is the rounding rule every derived-stat formula uses
func roundHalfUp(v float64) int {
	return int(math.Round(v))
}

// CalculateDerivedStats recomputes the derived stat block from base
// attributes plus progression deltas. It reads nothing else, mutates
// nothing, and is idempotent: recomputing from the same inputs always
// yields the same block.
func (s *service) CalculateDerivedStats(character *entities.CharacterProfile) entities.DerivedStats {
	if character == nil {
		return entities.DerivedStats{CriticalMultiplier: 1.0}
	}

	str := float64(character.TotalAttribute(entities.AttributeStrength))
	dex := float64(character.TotalAttribute(entities.AttributeDexterity))
	con := float64(character.TotalAttribute(entities.AttributeConstitution))
	intl := float64(character.TotalAttribute(entities.AttributeIntelligence))
	wis := float64(character.TotalAttribute(entities.AttributeWisdom))

	prog := character.Progression

	stats := entities.DerivedStats{
		MaxHealth:       maxInt(1, character.BaseMaxHealth+int(con)*2+prog.HealthBonus),
		MaxMana:         maxInt(0, roundHalfUp(float64(character.BaseMaxMana)+intl*1.5+float64(prog.ManaBonus))),
		Attack:          maxInt(1, roundHalfUp(str*0.8+dex*0.3)),
		Defense:         maxInt(0, roundHalfUp(con*0.6+dex*0.4)),
		Speed:           maxInt(1, roundHalfUp(dex*0.7+str*0.2)),
		Accuracy:        maxInt(0, roundHalfUp(dex*0.6+wis*0.3)),
		Evasion:         maxInt(0, roundHalfUp(dex*0.8+wis*0.2)),
		CriticalChance:  clampInt(roundHalfUp(dex*0.3+intl*0.2), 0, 100),
		CarryCapacity:   maxInt(0, roundHalfUp(str*5)+prog.CarryBonus),
		MovementSpeed:   maxInt(1, roundHalfUp(dex*0.5+con*0.3)),
		InitiativeBonus: maxInt(0, roundHalfUp(dex*0.4+wis*0.3)),
	}

	// Two-decimal precision, floored at a plain 1.0x multiplier.
	critMult := math.Round((1.5+str*0.02)*100) / 100
	if critMult < 1.0 {
		critMult = 1.0
	}
	stats.CriticalMultiplier = critMult

	return stats
}

// ApplyDerivedStats recomputes derived stats onto a copy of the
// character, updates vitals maxima, and re-clamps current vitals.
func (s *service) ApplyDerivedStats(character *entities.CharacterProfile) *entities.CharacterProfile {
	if character == nil {
		return nil
	}

	out := entities.NormalizeCharacter(character.Clone())
	out.Derived = s.CalculateDerivedStats(out)
	out.MaxHealth = out.Derived.MaxHealth
	out.MaxMana = out.Derived.MaxMana
	out.ClampVitals()
	return out
}

func maxInt(floor, v int) int {
	if v < floor {
		return floor
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
