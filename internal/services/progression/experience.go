package progression

import (
	"math"

	"github.com/KirkDiggler/storyforge/internal/entities"
	apperr "github.com/KirkDiggler/storyforge/internal/errors"
)

// XPToNextLevel implements the experience curve floor(100 * 1.5^(level-1))
func (s *service) XPToNextLevel(level int) (int, error) {
	if level < 1 {
		return 0, apperr.InvalidLevelf("level must be at least 1, got %d", level)
	}
	if level > entities.MaxLevel {
		return 0, apperr.LevelCeilingExceededf("level %d exceeds the cap of %d", level, entities.MaxLevel)
	}

	xp := math.Floor(100 * math.Pow(1.5, float64(level-1)))

	// The curve outgrows int64 in the last few levels before the cap;
	// saturate rather than hit an out-of-range conversion.
	if xp >= math.MaxInt64 {
		return math.MaxInt64, nil
	}
	return int(xp), nil
}

// TotalXPForLevel sums the per-level requirements for every level below
// the given one; level 1 requires no experience. Like XPToNextLevel, the
// total saturates at MaxInt64 instead of wrapping once the curve outgrows
// the integer range.
func (s *service) TotalXPForLevel(level int) (int, error) {
	if level < 1 {
		return 0, apperr.InvalidLevelf("level must be at least 1, got %d", level)
	}
	if level > entities.MaxLevel {
		return 0, apperr.LevelCeilingExceededf("level %d exceeds the cap of %d", level, entities.MaxLevel)
	}

	total := 0
	for i := 1; i < level; i++ {
		xp, err := s.XPToNextLevel(i)
		if err != nil {
			return 0, err
		}
		if total > math.MaxInt64-xp {
			return math.MaxInt64, nil
		}
		total += xp
	}
	return total, nil
}

// CheckLevelUp reports whether one more level is pending. It never
// looks past the single next level; crossing several levels is
// ProcessLevelUp's job.
func (s *service) CheckLevelUp(character *entities.CharacterProfile) bool {
	if character == nil {
		return false
	}
	if character.Level >= entities.MaxLevel {
		return false
	}
	if character.ExperienceToNextLevel <= 0 {
		return false
	}
	return character.ExperiencePoints >= character.ExperienceToNextLevel
}

// PointsForLevel returns the reward bundle for reaching a level.
// Milestone levels (divisible by 10) are deliberately double-rewarded
// on top of the base grants.
func (s *service) PointsForLevel(level int) entities.ProgressionPoints {
	points := entities.ProgressionPoints{
		Attribute: 2,
		Skill:     3,
	}
	if level%5 == 0 {
		points.Specialization = 1
	}
	if level%3 == 0 {
		points.Talent = 1
	}
	if level%10 == 0 {
		points.Attribute += 2
		points.Skill += 3
		points.Specialization++
	}
	return points
}

// ProcessLevelUp applies repeated single-level-ups until the banked
// experience no longer covers the next level, accumulating rewards from
// every level crossed. Excess experience carries forward exactly. The
// loop is bounded by the level cap; at the cap remaining experience
// stays banked.
func (s *service) ProcessLevelUp(character *entities.CharacterProfile) (*LevelUpResult, error) {
	if character == nil {
		return nil, apperr.InvalidArgument("character cannot be nil")
	}

	out := entities.NormalizeCharacter(character.Clone())
	if out.ExperienceToNextLevel <= 0 {
		xp, err := s.XPToNextLevel(out.Level)
		if err != nil {
			return nil, err
		}
		out.ExperienceToNextLevel = xp
	}

	result := &LevelUpResult{Character: out}

	for s.CheckLevelUp(out) {
		out.ExperiencePoints -= out.ExperienceToNextLevel
		out.Level++
		result.LevelsGained++

		reward := s.PointsForLevel(out.Level)
		result.PointsAwarded.Add(reward)
		out.ProgressionPoints.Add(reward)

		if out.Level%10 == 0 {
			result.MilestoneLevels = append(result.MilestoneLevels, out.Level)
		}

		next, err := s.XPToNextLevel(out.Level)
		if err != nil {
			// Reached the cap; experience stays banked.
			break
		}
		out.ExperienceToNextLevel = next
	}

	if out.ExperiencePoints < 0 {
		out.ExperiencePoints = 0
	}

	return result, nil
}
