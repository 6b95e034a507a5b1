package combat_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/storyforge/internal/entities"
	"github.com/KirkDiggler/storyforge/internal/rng"
	mockrng "github.com/KirkDiggler/storyforge/internal/rng/mock"
	"github.com/KirkDiggler/storyforge/internal/services/combat"
	"github.com/KirkDiggler/storyforge/internal/testutils"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// newTestService builds a combat service with scripted randomness and a
// frozen clock.
func newTestService(src rng.Source) combat.Service {
	return combat.NewService(&combat.ServiceConfig{
		RNG:   src,
		Clock: func() time.Time { return fixedNow },
	})
}

// newTestState builds a two-sided encounter with a fixed turn order,
// bypassing the initiative roll.
func newTestState(participants ...*entities.CombatParticipant) *entities.CombatState {
	order := make([]string, len(participants))
	for i, p := range participants {
		order[i] = p.ID
	}

	state := &entities.CombatState{
		ID:            "enc-1",
		Participants:  participants,
		TurnOrder:     order,
		Round:         1,
		StartedAt:     fixedNow,
		Victory:       []entities.VictoryCondition{{Type: entities.VictoryDefeatAllEnemies}},
		Defeat:        []entities.DefeatCondition{{Type: entities.DefeatPlayerDeath}},
		ActionHistory: []entities.ActionRecord{},
	}
	if len(order) > 0 {
		state.CurrentTurnID = order[0]
	}
	return state
}

func TestCreateCombat(t *testing.T) {
	src := mockrng.NewManualMockSource()
	// Initiative draws: player 15+0.9*20=33, enemy 15+0.1*20=17.
	src.SetDraws([]float64{0.9, 0.1})
	svc := newTestService(src)

	player := testutils.NewTestParticipant("player-1", entities.ParticipantTypePlayer)
	player.ActionPoints = 0 // should be refilled at creation
	enemy := testutils.NewTestParticipant("enemy-1", entities.ParticipantTypeEnemy)

	state, err := svc.CreateCombat(&combat.CreateCombatInput{
		Participants: []*entities.CombatParticipant{player, enemy},
		Victory:      []entities.VictoryCondition{{Type: entities.VictoryDefeatAllEnemies}},
		Defeat:       []entities.DefeatCondition{{Type: entities.DefeatPlayerDeath}},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, state.ID)
	assert.Equal(t, []string{"player-1", "enemy-1"}, state.TurnOrder)
	assert.Equal(t, "player-1", state.CurrentTurnID)
	assert.Equal(t, 1, state.Round)
	assert.Equal(t, fixedNow, state.StartedAt)
	assert.Equal(t, entities.PhasePlayerTurn, state.Phase())

	for _, p := range state.Participants {
		assert.Equal(t, p.MaxActionPoints, p.ActionPoints)
	}

	// The input participants must not be shared with the state.
	state.Participants[0].Health = 1
	assert.Equal(t, 100, player.Health)
}

func TestCreateCombat_InvalidInput(t *testing.T) {
	svc := newTestService(mockrng.NewManualMockSource())

	_, err := svc.CreateCombat(nil)
	assert.Error(t, err)

	_, err = svc.CreateCombat(&combat.CreateCombatInput{})
	assert.Error(t, err)

	_, err = svc.CreateCombat(&combat.CreateCombatInput{
		Participants: []*entities.CombatParticipant{{Name: "no id"}},
	})
	assert.Error(t, err)
}
