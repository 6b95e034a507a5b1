package combat

import (
	"github.com/KirkDiggler/storyforge/internal/entities"
)

// advanceTurn hands the turn to the next living participant in the
// initiative order. The departing actor gets its end-of-turn ticks and
// cooldown decrements; the incoming actor gets its action points back
// and its start-of-turn ticks. The round increments each time the
// order wraps.
func (s *service) advanceTurn(state *entities.CombatState) {
	if state == nil || len(state.TurnOrder) == 0 {
		return
	}

	if departing := state.CurrentParticipant(); departing != nil {
		s.TickStatusEffects(departing, entities.TickEndTurn)
		decrementCooldowns(departing)
	}

	idx := turnIndex(state)

	// Skip dead participants; they keep their seat in the order but
	// never hold the turn. Bounded by one full lap past the wrap.
	for range state.TurnOrder {
		idx++
		if idx >= len(state.TurnOrder) {
			idx = 0
			state.Round++
		}
		next := state.Participant(state.TurnOrder[idx])
		if next != nil && next.IsAlive() {
			break
		}
	}

	state.CurrentTurnID = state.TurnOrder[idx]

	// Action points reset only at the start of the owner's own turn.
	if incoming := state.CurrentParticipant(); incoming != nil {
		incoming.ActionPoints = incoming.MaxActionPoints
		s.TickStatusEffects(incoming, entities.TickStartTurn)
	}
}

// turnIndex locates the current turn holder in the initiative order
func turnIndex(state *entities.CombatState) int {
	for i, id := range state.TurnOrder {
		if id == state.CurrentTurnID {
			return i
		}
	}
	return 0
}

func decrementCooldowns(p *entities.CombatParticipant) {
	for _, skill := range p.Skills {
		if skill != nil && skill.CurrentCooldown > 0 {
			skill.CurrentCooldown--
		}
	}
}
