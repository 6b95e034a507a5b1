package combat

import (
	"sort"

	"github.com/KirkDiggler/storyforge/internal/entities"
)

// RollInitiative rolls speed + random()*20 for each participant and
// returns ids sorted by roll, highest first. Ties keep input order.
func (s *service) RollInitiative(participants []*entities.CombatParticipant) []string {
	type initiativeRoll struct {
		id   string
		roll float64
	}

	rolls := make([]initiativeRoll, 0, len(participants))
	for _, p := range participants {
		if p == nil || p.ID == "" {
			continue
		}
		rolls = append(rolls, initiativeRoll{
			id:   p.ID,
			roll: float64(p.Speed) + s.rng.Float64()*20,
		})
	}

	sort.SliceStable(rolls, func(i, j int) bool {
		return rolls[i].roll > rolls[j].roll
	})

	order := make([]string, len(rolls))
	for i, r := range rolls {
		order[i] = r.id
	}
	return order
}
