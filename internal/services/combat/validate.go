package combat

import (
	"fmt"

	"github.com/KirkDiggler/storyforge/internal/entities"
)

// ValidateAction checks whether an action is legal right now. Failures
// here are expected game flow and come back as a verdict with a
// reason; they are never raised as errors.
func (s *service) ValidateAction(state *entities.CombatState, action *entities.CombatAction) *ValidationResult {
	if state == nil || action == nil {
		return invalid("missing combat state or action")
	}
	if state.Ended {
		return invalid("combat has ended")
	}

	actor := state.Participant(action.ActorID)
	if actor == nil {
		return invalid(fmt.Sprintf("actor %q is not in this combat", action.ActorID))
	}
	if !actor.IsAlive() {
		return invalid(fmt.Sprintf("%s cannot act at 0 health", actor.Name))
	}
	if state.CurrentTurnID != action.ActorID {
		return invalid(fmt.Sprintf("it is not %s's turn", actor.Name))
	}

	apCost := actionPointCost(action, actor)
	if actor.ActionPoints < apCost {
		return invalid(fmt.Sprintf("%s needs %d action points but has %d", actor.Name, apCost, actor.ActionPoints))
	}

	switch action.Type {
	case entities.ActionAttack:
		return s.validateAttackTarget(state, actor, action)
	case entities.ActionSkill:
		return s.validateSkill(state, actor, action)
	case entities.ActionItem:
		return s.validateItem(state, actor, action)
	case entities.ActionMove:
		if action.TargetPosition == nil {
			return invalid("move requires a target position")
		}
	case entities.ActionDefend, entities.ActionFlee, entities.ActionWait:
		// No target required.
	default:
		return invalid(fmt.Sprintf("unknown action type %q", action.Type))
	}

	return &ValidationResult{Valid: true}
}

func (s *service) validateAttackTarget(state *entities.CombatState, actor *entities.CombatParticipant, action *entities.CombatAction) *ValidationResult {
	if action.TargetID == "" {
		return invalid("attack requires a target")
	}
	if action.TargetID == actor.ID {
		return invalid("cannot attack yourself")
	}

	target := state.Participant(action.TargetID)
	if target == nil {
		return invalid(fmt.Sprintf("target %q is not in this combat", action.TargetID))
	}
	if target.Type == actor.Type {
		return invalid(fmt.Sprintf("cannot attack %s: same side", target.Name))
	}
	if !target.IsAlive() {
		return invalid(fmt.Sprintf("%s is already down", target.Name))
	}

	return &ValidationResult{Valid: true}
}

func (s *service) validateSkill(state *entities.CombatState, actor *entities.CombatParticipant, action *entities.CombatAction) *ValidationResult {
	skill := actor.Skill(action.SkillID)
	if skill == nil {
		return invalid(fmt.Sprintf("%s does not know skill %q", actor.Name, action.SkillID))
	}
	if skill.CurrentCooldown > 0 {
		return invalid(fmt.Sprintf("%s is on cooldown for %d more turns", skill.Name, skill.CurrentCooldown))
	}

	manaCost := skill.ManaCost
	if action.ManaCost > manaCost {
		manaCost = action.ManaCost
	}
	if actor.Mana < manaCost {
		return invalid(fmt.Sprintf("%s needs %d mana but has %d", skill.Name, manaCost, actor.Mana))
	}

	// Targeting obeys the skill's declared target type.
	switch skill.TargetType {
	case entities.TargetSelf:
		if action.TargetID != "" && action.TargetID != actor.ID {
			return invalid(fmt.Sprintf("%s can only target its user", skill.Name))
		}
	case entities.TargetSingleAlly:
		target := state.Participant(action.TargetID)
		if target == nil {
			return invalid(fmt.Sprintf("%s requires an ally target", skill.Name))
		}
		if !sameSide(actor, target) {
			return invalid(fmt.Sprintf("%s can only target allies", skill.Name))
		}
	case entities.TargetSingleEnemy:
		target := state.Participant(action.TargetID)
		if target == nil {
			return invalid(fmt.Sprintf("%s requires an enemy target", skill.Name))
		}
		if sameSide(actor, target) {
			return invalid(fmt.Sprintf("%s can only target enemies", skill.Name))
		}
		if !target.IsAlive() {
			return invalid(fmt.Sprintf("%s is already down", target.Name))
		}
	case entities.TargetAny:
		if action.TargetID != "" && state.Participant(action.TargetID) == nil {
			return invalid(fmt.Sprintf("target %q is not in this combat", action.TargetID))
		}
	default:
		return invalid(fmt.Sprintf("skill %s has unknown target type %q", skill.Name, skill.TargetType))
	}

	return &ValidationResult{Valid: true}
}

func (s *service) validateItem(state *entities.CombatState, actor *entities.CombatParticipant, action *entities.CombatAction) *ValidationResult {
	item := actor.Item(action.ItemID)
	if item == nil {
		return invalid(fmt.Sprintf("%s does not carry item %q", actor.Name, action.ItemID))
	}
	if item.Quantity <= 0 {
		return invalid(fmt.Sprintf("no %s left", item.Name))
	}
	if action.TargetID != "" && state.Participant(action.TargetID) == nil {
		return invalid(fmt.Sprintf("target %q is not in this combat", action.TargetID))
	}
	return &ValidationResult{Valid: true}
}

// actionPointCost resolves the effective cost: an explicit cost on the
// action wins, skills fall back to their declared cost, waiting is
// free, everything else costs one point.
func actionPointCost(action *entities.CombatAction, actor *entities.CombatParticipant) int {
	if action.ActionPointCost > 0 {
		return action.ActionPointCost
	}
	switch action.Type {
	case entities.ActionWait:
		return 0
	case entities.ActionSkill:
		if skill := actor.Skill(action.SkillID); skill != nil && skill.ActionPointCost > 0 {
			return skill.ActionPointCost
		}
		return 1
	default:
		return 1
	}
}

// sameSide groups players with allies against enemies
func sameSide(a, b *entities.CombatParticipant) bool {
	return (a.Type == entities.ParticipantTypeEnemy) == (b.Type == entities.ParticipantTypeEnemy)
}

func invalid(reason string) *ValidationResult {
	return &ValidationResult{Valid: false, Reason: reason}
}
