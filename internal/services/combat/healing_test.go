package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/storyforge/internal/entities"
	mockrng "github.com/KirkDiggler/storyforge/internal/rng/mock"
	"github.com/KirkDiggler/storyforge/internal/testutils"
)

func TestCalculateHealing_Terms(t *testing.T) {
	svc := newTestService(mockrng.NewManualMockSource())

	actor := testutils.NewTestParticipant("a", entities.ParticipantTypeAlly)
	target := testutils.NewTestParticipant("p", entities.ParticipantTypePlayer)
	target.Health = 40

	result := svc.CalculateHealing(actor, target, 20, true)

	assert.Equal(t, 20, result.BaseHealing)
	assert.Equal(t, 2, result.AttributeModifier, "round(20*0.1)")
	assert.Equal(t, 1, result.SkillBonus, "round(20*0.05)")
	assert.Equal(t, 0, result.StatusModifier)
	assert.Equal(t, 23, result.FinalHealing)
	assert.Equal(t, 0, result.Overheal)
}

func TestCalculateHealing_OverhealReported(t *testing.T) {
	svc := newTestService(mockrng.NewManualMockSource())

	actor := testutils.NewTestParticipant("a", entities.ParticipantTypeAlly)
	target := testutils.NewTestParticipant("p", entities.ParticipantTypePlayer)
	target.Health = 95 // missing 5

	result := svc.CalculateHealing(actor, target, 20, false)

	// 20 + 2 = 22 raw, clamped to the 5 missing.
	assert.Equal(t, 5, result.FinalHealing)
	assert.Equal(t, 17, result.Overheal, "clamped remainder is reported, not dropped")
}

func TestCalculateHealing_StatusBonus(t *testing.T) {
	svc := newTestService(mockrng.NewManualMockSource())

	actor := testutils.NewTestParticipant("a", entities.ParticipantTypeAlly)
	actor.StatusEffects = []*entities.StatusEffect{
		{Name: "Blessed", Stacks: 1, MaxStacks: 1, Duration: 3,
			Modifiers: []entities.StatModifier{{Stat: entities.StatHealing, Value: 5}}},
	}
	target := testutils.NewTestParticipant("p", entities.ParticipantTypePlayer)
	target.Health = 10

	result := svc.CalculateHealing(actor, target, 10, false)
	assert.Equal(t, 5, result.StatusModifier)
	assert.Equal(t, 17, result.FinalHealing)
}

func TestCalculateHealing_FullHealthTarget(t *testing.T) {
	svc := newTestService(mockrng.NewManualMockSource())

	actor := testutils.NewTestParticipant("a", entities.ParticipantTypeAlly)
	target := testutils.NewTestParticipant("p", entities.ParticipantTypePlayer)

	result := svc.CalculateHealing(actor, target, 10, false)
	assert.Equal(t, 0, result.FinalHealing)
	assert.Equal(t, 12, result.Overheal)
}
