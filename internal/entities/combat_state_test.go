package entities_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/storyforge/internal/entities"
)

func newStateFixture() *entities.CombatState {
	return &entities.CombatState{
		ID: "enc-1",
		Participants: []*entities.CombatParticipant{
			{
				ID: "player-1", Name: "Hero", Type: entities.ParticipantTypePlayer,
				Health: 80, MaxHealth: 100, Mana: 30, MaxMana: 50,
				Attack: 20, Defense: 10, Speed: 15,
				ActionPoints: 2, MaxActionPoints: 3,
				Weapon: &entities.Weapon{ID: "sword", Name: "Sword", Damage: 12, Accuracy: 80, CritBonus: 5},
				StatusEffects: []*entities.StatusEffect{
					{
						Name: "Poison", Duration: 2, Stacks: 2, MaxStacks: 3,
						TickTiming: entities.TickStartTurn,
						Modifiers:  []entities.StatModifier{{Stat: entities.StatHealth, Value: -5}},
					},
				},
			},
			{
				ID: "enemy-1", Name: "Ogre", Type: entities.ParticipantTypeEnemy,
				Health: 150, MaxHealth: 150,
				Armor: &entities.Armor{ID: "hide", Name: "Thick Hide", DamageReduction: 3},
			},
		},
		TurnOrder:     []string{"player-1", "enemy-1"},
		CurrentTurnID: "player-1",
		Round:         3,
		StartedAt:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Environment:   []*entities.EnvironmentEffect{{Name: "Burning Field", Type: "damage", Value: 2}},
		Victory:       []entities.VictoryCondition{{Type: entities.VictorySurviveTurns, TargetRounds: 5}},
		Defeat:        []entities.DefeatCondition{{Type: entities.DefeatTimeLimit, TimeLimitSeconds: 300}},
		ActionHistory: []entities.ActionRecord{
			{Round: 1, ActorID: "player-1", ActionType: entities.ActionAttack, TargetID: "enemy-1", Damage: 9},
		},
	}
}

func TestCombatState_JSONRoundTrip(t *testing.T) {
	state := newStateFixture()

	data, err := json.Marshal(state)
	require.NoError(t, err)

	var decoded entities.CombatState
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, state, &decoded)
}

func TestCombatState_Clone(t *testing.T) {
	state := newStateFixture()
	clone := state.Clone()

	clone.Participants[0].Health = 1
	clone.Participants[0].StatusEffects[0].Stacks = 3
	clone.Participants[1].Armor.DamageReduction = 99
	clone.TurnOrder[0] = "other"
	clone.Environment[0].Value = 50
	clone.ActionHistory = append(clone.ActionHistory, entities.ActionRecord{Round: 4})

	assert.Equal(t, 80, state.Participants[0].Health)
	assert.Equal(t, 2, state.Participants[0].StatusEffects[0].Stacks)
	assert.Equal(t, 3, state.Participants[1].Armor.DamageReduction)
	assert.Equal(t, "player-1", state.TurnOrder[0])
	assert.Equal(t, 2, state.Environment[0].Value)
	assert.Len(t, state.ActionHistory, 1)
}

func TestCombatState_Queries(t *testing.T) {
	state := newStateFixture()

	assert.Equal(t, "Hero", state.Participant("player-1").Name)
	assert.Nil(t, state.Participant("ghost"))
	assert.Equal(t, "player-1", state.CurrentParticipant().ID)
	assert.Equal(t, entities.PhasePlayerTurn, state.Phase())

	state.CurrentTurnID = "enemy-1"
	assert.Equal(t, entities.PhaseEnemyTurn, state.Phase())

	assert.Equal(t, 1, state.AliveOfType(entities.ParticipantTypePlayer))
	state.Participants[0].Health = 0
	assert.Equal(t, 0, state.AliveOfType(entities.ParticipantTypePlayer))
}

func TestStatusEffect_ModifierTotal(t *testing.T) {
	effect := &entities.StatusEffect{
		Name:   "Weakness",
		Stacks: 3,
		Modifiers: []entities.StatModifier{
			{Stat: entities.StatDamage, Value: -2},
			{Stat: entities.StatResistance, Value: 1},
		},
	}

	assert.Equal(t, -6, effect.ModifierTotal(entities.StatDamage))
	assert.Equal(t, 3, effect.ModifierTotal(entities.StatResistance))
	assert.Equal(t, 0, effect.ModifierTotal(entities.StatHealing))

	// Zero stacks still counts as one application.
	effect.Stacks = 0
	assert.Equal(t, -2, effect.ModifierTotal(entities.StatDamage))
}

func TestParticipant_DamageAndHealing(t *testing.T) {
	p := &entities.CombatParticipant{Health: 50, MaxHealth: 100}

	p.ApplyDamage(30)
	assert.Equal(t, 20, p.Health)

	p.ApplyDamage(500)
	assert.Equal(t, 0, p.Health)
	assert.False(t, p.IsAlive())

	p.Heal(200)
	assert.Equal(t, 100, p.Health)

	p.ApplyDamage(-10)
	assert.Equal(t, 100, p.Health, "negative damage is ignored")
}
