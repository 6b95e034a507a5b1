package combat

import (
	"fmt"

	"github.com/KirkDiggler/storyforge/internal/entities"
	apperr "github.com/KirkDiggler/storyforge/internal/errors"
)

// ProcessAction runs the full turn pipeline: validate, execute against
// a copy of the state, record history, evaluate end conditions, and
// advance the turn. The input state is never mutated.
func (s *service) ProcessAction(state *entities.CombatState, action *entities.CombatAction) (*entities.CombatTurnResult, error) {
	if state == nil {
		return nil, apperr.InvalidArgument("combat state cannot be nil")
	}
	if action == nil {
		return nil, apperr.InvalidArgument("action cannot be nil")
	}

	if verdict := s.ValidateAction(state, action); !verdict.Valid {
		return &entities.CombatTurnResult{
			Success:      false,
			State:        state,
			ActionResult: &entities.ActionResult{Valid: false, Reason: verdict.Reason},
			NextPhase:    state.Phase(),
		}, nil
	}

	next := state.Clone()
	actor := next.Participant(action.ActorID)
	apCost := actionPointCost(action, actor)

	actionResult, record := s.executeAction(next, actor, action)

	actor.ActionPoints -= apCost
	if actor.ActionPoints < 0 {
		actor.ActionPoints = 0
	}

	record.Round = next.Round
	record.ActorID = actor.ID
	record.ActionType = action.Type
	record.Timestamp = s.clock()
	next.ActionHistory = append(next.ActionHistory, record)

	result := &entities.CombatTurnResult{
		Success:      true,
		State:        next,
		ActionResult: actionResult,
	}

	if actionResult.Fled {
		next.Ended = true
		next.Outcome = "fled"
		result.CombatEnd = &entities.CombatEndResult{
			Victory:   false,
			Condition: "flee",
			Reason:    fmt.Sprintf("%s fled the battle", actor.Name),
		}
		result.NextPhase = next.Phase()
		return result, nil
	}

	// End conditions run before the turn advances so a kill ends the
	// encounter the instant it lands, even mid-round.
	if end := s.CheckCombatEnd(next); end != nil {
		s.finishCombat(next, result, end)
		return result, nil
	}

	s.advanceTurn(next)

	// Start and end-of-turn ticks can themselves drop a participant to
	// zero, so the predicates get one more look after the handoff.
	if end := s.CheckCombatEnd(next); end != nil {
		s.finishCombat(next, result, end)
		return result, nil
	}

	result.NextPhase = next.Phase()
	return result, nil
}

func (s *service) finishCombat(state *entities.CombatState, result *entities.CombatTurnResult, end *entities.CombatEndResult) {
	state.Ended = true
	if end.Victory {
		state.Outcome = "victory"
	} else {
		state.Outcome = "defeat"
	}
	result.CombatEnd = end
	result.NextPhase = state.Phase()
}

// executeAction applies an already-validated action to the working copy
func (s *service) executeAction(state *entities.CombatState, actor *entities.CombatParticipant, action *entities.CombatAction) (*entities.ActionResult, entities.ActionRecord) {
	result := &entities.ActionResult{Valid: true}
	record := entities.ActionRecord{TargetID: action.TargetID}

	switch action.Type {
	case entities.ActionAttack:
		target := state.Participant(action.TargetID)
		dmg := s.CalculateDamage(state, actor, target, nil)
		target.ApplyDamage(dmg.FinalDamage)

		result.Damage = dmg
		record.Damage = dmg.FinalDamage
		record.Critical = dmg.IsCritical
		record.Blocked = dmg.IsBlocked
		record.Description = fmt.Sprintf("%s attacks %s for %d damage", actor.Name, target.Name, dmg.FinalDamage)

	case entities.ActionSkill:
		skill := actor.Skill(action.SkillID)
		target := s.resolveSkillTarget(state, actor, skill, action)

		if skill.Healing {
			heal := s.CalculateHealing(actor, target, skill.Power, true)
			target.Heal(heal.FinalHealing)
			result.Healing = heal
			record.Healing = heal.FinalHealing
			record.Description = fmt.Sprintf("%s uses %s on %s, healing %d", actor.Name, skill.Name, target.Name, heal.FinalHealing)
		} else {
			dmg := s.CalculateDamage(state, actor, target, skill)
			target.ApplyDamage(dmg.FinalDamage)
			result.Damage = dmg
			record.Damage = dmg.FinalDamage
			record.Critical = dmg.IsCritical
			record.Blocked = dmg.IsBlocked
			record.Description = fmt.Sprintf("%s uses %s on %s for %d damage", actor.Name, skill.Name, target.Name, dmg.FinalDamage)
		}

		if skill.AppliesEffect != nil {
			s.ApplyStatusEffect(target, skill.AppliesEffect)
			result.AppliedEffects = append(result.AppliedEffects, skill.AppliesEffect.Name)
		}

		manaCost := skill.ManaCost
		if action.ManaCost > manaCost {
			manaCost = action.ManaCost
		}
		actor.Mana -= manaCost
		if actor.Mana < 0 {
			actor.Mana = 0
		}
		skill.CurrentCooldown = skill.Cooldown
		record.TargetID = target.ID

	case entities.ActionItem:
		item := actor.Item(action.ItemID)
		target := actor
		if action.TargetID != "" {
			target = state.Participant(action.TargetID)
		}

		if item.HealAmount > 0 {
			heal := s.CalculateHealing(actor, target, item.HealAmount, false)
			target.Heal(heal.FinalHealing)
			result.Healing = heal
			record.Healing = heal.FinalHealing
		}
		if item.ManaAmount > 0 {
			target.Mana += item.ManaAmount
			if target.Mana > target.MaxMana {
				target.Mana = target.MaxMana
			}
		}
		if item.AppliesEffect != nil {
			s.ApplyStatusEffect(target, item.AppliesEffect)
			result.AppliedEffects = append(result.AppliedEffects, item.AppliesEffect.Name)
		}

		item.Quantity--
		record.TargetID = target.ID
		record.Description = fmt.Sprintf("%s uses %s on %s", actor.Name, item.Name, target.Name)

	case entities.ActionDefend:
		guard := &entities.StatusEffect{
			Name:       "Defending",
			Duration:   1,
			Stacks:     1,
			MaxStacks:  1,
			TickTiming: entities.TickStartTurn,
			Modifiers: []entities.StatModifier{
				{Stat: entities.StatResistance, Value: roundHalfUp(float64(actor.Defense) * 0.5)},
			},
		}
		s.ApplyStatusEffect(actor, guard)
		result.AppliedEffects = append(result.AppliedEffects, guard.Name)
		record.Description = fmt.Sprintf("%s takes a defensive stance", actor.Name)

	case entities.ActionMove:
		actor.Position = *action.TargetPosition
		record.Description = fmt.Sprintf("%s moves to (%d, %d)", actor.Name, actor.Position.X, actor.Position.Y)

	case entities.ActionFlee:
		if s.attemptFlee(state, actor) {
			result.Fled = true
			record.Description = fmt.Sprintf("%s flees the battle", actor.Name)
		} else {
			record.Description = fmt.Sprintf("%s fails to flee", actor.Name)
		}

	case entities.ActionWait:
		record.Description = fmt.Sprintf("%s waits", actor.Name)
	}

	result.Description = record.Description
	return result, record
}

// resolveSkillTarget picks the effective target for a skill. Self and
// untargeted skills land on the actor.
func (s *service) resolveSkillTarget(state *entities.CombatState, actor *entities.CombatParticipant, skill *entities.CombatSkill, action *entities.CombatAction) *entities.CombatParticipant {
	if skill.TargetType == entities.TargetSelf || action.TargetID == "" {
		return actor
	}
	return state.Participant(action.TargetID)
}

// attemptFlee rolls against a speed-differential chance: faster actors
// escape more reliably, but escape is never certain nor impossible.
func (s *service) attemptFlee(state *entities.CombatState, actor *entities.CombatParticipant) bool {
	fastest := 0
	for _, p := range state.Participants {
		if p != nil && p.IsAlive() && !sameSide(actor, p) && p.Speed > fastest {
			fastest = p.Speed
		}
	}

	chance := clampFloat(50+float64(actor.Speed-fastest), 10, 95)
	return s.rng.Float64()*100 < chance
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
