package progression_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/storyforge/internal/entities"
	apperr "github.com/KirkDiggler/storyforge/internal/errors"
	"github.com/KirkDiggler/storyforge/internal/services/progression"
	"github.com/KirkDiggler/storyforge/internal/testutils"
)

func newService() progression.Service {
	return progression.NewService(&progression.ServiceConfig{})
}

func TestXPToNextLevel_Curve(t *testing.T) {
	svc := newService()

	tests := []struct {
		level int
		want  int
	}{
		{1, 100},
		{2, 150},
		{3, 225},
		{4, 337},
		{5, 506},
	}

	for _, tt := range tests {
		got, err := svc.XPToNextLevel(tt.level)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "level %d", tt.level)
	}
}

func TestXPToNextLevel_InvalidInput(t *testing.T) {
	svc := newService()

	_, err := svc.XPToNextLevel(0)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeInvalidLevel))

	_, err = svc.XPToNextLevel(-1)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeInvalidLevel))

	_, err = svc.XPToNextLevel(101)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeLevelCeilingExceeded))
}

func TestTotalXPForLevel(t *testing.T) {
	svc := newService()

	total, err := svc.TotalXPForLevel(1)
	require.NoError(t, err)
	assert.Equal(t, 0, total)

	total, err = svc.TotalXPForLevel(2)
	require.NoError(t, err)
	assert.Equal(t, 100, total)

	total, err = svc.TotalXPForLevel(3)
	require.NoError(t, err)
	assert.Equal(t, 250, total)

	_, err = svc.TotalXPForLevel(0)
	assert.Error(t, err)

	_, err = svc.TotalXPForLevel(101)
	assert.Error(t, err)
}

func TestTotalXPForLevel_CurveIdentity(t *testing.T) {
	svc := newService()

	// The cumulative curve must agree with the per-level curve at every
	// step up to the cap. Near the cap both curves saturate at MaxInt64,
	// where the identity becomes the clamp itself.
	for level := 1; level < entities.MaxLevel; level++ {
		total, err := svc.TotalXPForLevel(level)
		require.NoError(t, err)

		next, err := svc.TotalXPForLevel(level + 1)
		require.NoError(t, err)

		step, err := svc.XPToNextLevel(level)
		require.NoError(t, err)

		if total > math.MaxInt64-step {
			assert.Equal(t, math.MaxInt64, next, "clamp expected at level %d", level)
		} else {
			assert.Equal(t, total+step, next, "identity broken at level %d", level)
		}
	}
}

func TestTotalXPForLevel_SaturatesNearCap(t *testing.T) {
	svc := newService()

	// The exponential curve outgrows int64 in the 90s; every total in
	// [1,100] must stay non-negative and non-decreasing, clamping at
	// MaxInt64 instead of wrapping.
	prev := 0
	sawClamp := false
	for level := 1; level <= entities.MaxLevel; level++ {
		total, err := svc.TotalXPForLevel(level)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, total, 0, "negative total at level %d", level)
		assert.GreaterOrEqual(t, total, prev, "total regressed at level %d", level)
		prev = total

		if total == math.MaxInt64 {
			sawClamp = true
		}
	}
	assert.True(t, sawClamp, "the curve should hit the clamp before the cap")

	total, err := svc.TotalXPForLevel(entities.MaxLevel)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt64, total)
}

func TestCheckLevelUp(t *testing.T) {
	svc := newService()

	c := testutils.NewTestCharacter("c1")
	c.ExperiencePoints = 99
	c.ExperienceToNextLevel = 100
	assert.False(t, svc.CheckLevelUp(c))

	c.ExperiencePoints = 100
	assert.True(t, svc.CheckLevelUp(c))

	c.Level = entities.MaxLevel
	assert.False(t, svc.CheckLevelUp(c), "no level-ups past the cap")

	assert.False(t, svc.CheckLevelUp(nil))
}

func TestPointsForLevel(t *testing.T) {
	svc := newService()

	assert.Equal(t, entities.ProgressionPoints{Attribute: 2, Skill: 3}, svc.PointsForLevel(2))
	assert.Equal(t, entities.ProgressionPoints{Attribute: 2, Skill: 3, Talent: 1}, svc.PointsForLevel(3))
	assert.Equal(t, entities.ProgressionPoints{Attribute: 2, Skill: 3, Specialization: 1}, svc.PointsForLevel(5))
	assert.Equal(t, entities.ProgressionPoints{Attribute: 2, Skill: 3, Specialization: 1, Talent: 1}, svc.PointsForLevel(15))

	// Milestone levels are double-rewarded on top of base grants.
	assert.Equal(t, entities.ProgressionPoints{Attribute: 4, Skill: 6, Specialization: 2}, svc.PointsForLevel(10))
	assert.Equal(t, entities.ProgressionPoints{Attribute: 4, Skill: 6, Specialization: 2, Talent: 1}, svc.PointsForLevel(30))
}

func TestProcessLevelUp_SingleLevel(t *testing.T) {
	svc := newService()

	c := testutils.NewTestCharacter("c1")
	c.Level = 2
	c.ExperiencePoints = 175
	c.ExperienceToNextLevel = 150

	result, err := svc.ProcessLevelUp(c)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Character.Level)
	assert.Equal(t, 25, result.Character.ExperiencePoints)
	assert.Equal(t, 225, result.Character.ExperienceToNextLevel)
	assert.Equal(t, 1, result.LevelsGained)

	// Input must be untouched.
	assert.Equal(t, 2, c.Level)
	assert.Equal(t, 175, c.ExperiencePoints)
}

func TestProcessLevelUp_MultipleLevels(t *testing.T) {
	svc := newService()

	c := testutils.NewTestCharacter("c1")
	c.Level = 1
	c.ExperiencePoints = 500
	c.ExperienceToNextLevel = 100

	result, err := svc.ProcessLevelUp(c)
	require.NoError(t, err)

	// 500 -> -100 (L2) -> -150 (L3) -> -225 (L4), 25 left over.
	assert.Equal(t, 4, result.Character.Level)
	assert.Equal(t, 3, result.LevelsGained)
	assert.Equal(t, 25, result.Character.ExperiencePoints)
	assert.Equal(t, 337, result.Character.ExperienceToNextLevel)

	// Rewards accumulate from every level crossed, not just the last.
	assert.Equal(t, 6, result.PointsAwarded.Attribute)
	assert.Equal(t, 9, result.PointsAwarded.Skill)
	assert.Equal(t, 1, result.PointsAwarded.Talent)
	assert.Equal(t, 0, result.PointsAwarded.Specialization)

	assert.Equal(t, result.PointsAwarded, result.Character.ProgressionPoints)
}

func TestProcessLevelUp_NoPendingLevel(t *testing.T) {
	svc := newService()

	c := testutils.NewTestCharacter("c1")
	c.ExperiencePoints = 50
	c.ExperienceToNextLevel = 100

	result, err := svc.ProcessLevelUp(c)
	require.NoError(t, err)
	assert.Equal(t, 0, result.LevelsGained)
	assert.Equal(t, 50, result.Character.ExperiencePoints)
	assert.Equal(t, 1, result.Character.Level)
}

func TestProcessLevelUp_MilestoneTracking(t *testing.T) {
	svc := newService()

	c := testutils.NewTestCharacter("c1")
	c.Level = 9
	c.ExperienceToNextLevel = 100

	// Enough to cross exactly levels 10 and 11.
	xp10, err := svc.XPToNextLevel(10)
	require.NoError(t, err)
	c.ExperiencePoints = 100 + xp10

	result, err := svc.ProcessLevelUp(c)
	require.NoError(t, err)
	assert.Equal(t, 11, result.Character.Level)
	assert.Equal(t, []int{10}, result.MilestoneLevels)
}

func TestProcessLevelUp_NilCharacter(t *testing.T) {
	svc := newService()

	_, err := svc.ProcessLevelUp(nil)
	require.Error(t, err)
	assert.True(t, apperr.IsInvalidArgument(err))
}
