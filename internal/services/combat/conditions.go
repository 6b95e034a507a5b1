package combat

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/storyforge/internal/entities"
)

// CheckCombatEnd evaluates the declared victory conditions, then the
// defeat conditions, each in declared order. The first match wins and
// short-circuits everything after it. Returns nil while combat is
// still live.
func (s *service) CheckCombatEnd(state *entities.CombatState) *entities.CombatEndResult {
	if state == nil {
		return nil
	}

	for _, cond := range state.Victory {
		switch cond.Type {
		case entities.VictoryDefeatAllEnemies:
			if state.AliveOfType(entities.ParticipantTypeEnemy) == 0 {
				return &entities.CombatEndResult{
					Victory:   true,
					Condition: string(cond.Type),
					Reason:    "all enemies defeated",
				}
			}
		case entities.VictorySurviveTurns:
			if cond.TargetRounds > 0 && state.Round >= cond.TargetRounds {
				return &entities.CombatEndResult{
					Victory:   true,
					Condition: string(cond.Type),
					Reason:    fmt.Sprintf("survived %d rounds", cond.TargetRounds),
				}
			}
		}
	}

	for _, cond := range state.Defeat {
		switch cond.Type {
		case entities.DefeatPlayerDeath:
			if state.AliveOfType(entities.ParticipantTypePlayer) == 0 {
				return &entities.CombatEndResult{
					Victory:   false,
					Condition: string(cond.Type),
					Reason:    "all players defeated",
				}
			}
		case entities.DefeatTimeLimit:
			if cond.TimeLimitSeconds > 0 {
				elapsed := s.clock().Sub(state.StartedAt)
				if elapsed > time.Duration(cond.TimeLimitSeconds)*time.Second {
					return &entities.CombatEndResult{
						Victory:   false,
						Condition: string(cond.Type),
						Reason:    fmt.Sprintf("time limit of %ds exceeded", cond.TimeLimitSeconds),
					}
				}
			}
		}
	}

	return nil
}
