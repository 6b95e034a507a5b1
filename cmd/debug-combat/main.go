// debug-combat runs a scripted encounter end to end and prints the
// action history. Useful for eyeballing engine behavior without a host
// app. Set REDIS_ADDR to also persist the final state.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/storyforge/internal/config"
	"github.com/KirkDiggler/storyforge/internal/entities"
	"github.com/KirkDiggler/storyforge/internal/repositories/encounters"
	"github.com/KirkDiggler/storyforge/internal/rng"
	"github.com/KirkDiggler/storyforge/internal/services/combat"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	seed := cfg.Engine.RNGSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("RNG seed: %d", seed)

	svc := combat.NewService(&combat.ServiceConfig{
		RNG: rng.NewRandSource(seed),
	})

	hero := &entities.CombatParticipant{
		ID: "hero", Name: "Hero", Type: entities.ParticipantTypePlayer,
		Health: 120, MaxHealth: 120, Mana: 40, MaxMana: 40,
		Attack: 24, Defense: 12, Speed: 16, CritChance: 15, CritMultiplier: 1.7,
		MaxActionPoints: 3,
		Weapon:          &entities.Weapon{ID: "sword", Name: "Iron Sword", Damage: 14, Accuracy: 20, CritBonus: 5},
	}
	companion := &entities.CombatParticipant{
		ID: "companion", Name: "Companion", Type: entities.ParticipantTypeAlly,
		Health: 80, MaxHealth: 80, Mana: 60, MaxMana: 60,
		Attack: 16, Defense: 8, Speed: 12, CritChance: 8, CritMultiplier: 1.5,
		MaxActionPoints: 3,
		Skills: []*entities.CombatSkill{
			{ID: "mend", Name: "Mend", TargetType: entities.TargetSingleAlly, ManaCost: 10, Power: 20, Healing: true},
		},
	}
	ogre := &entities.CombatParticipant{
		ID: "ogre", Name: "Ogre", Type: entities.ParticipantTypeEnemy,
		Health: 180, MaxHealth: 180,
		Attack: 20, Defense: 14, Speed: 8, CritChance: 5, CritMultiplier: 1.5,
		MaxActionPoints: 2,
		Armor:           &entities.Armor{ID: "hide", Name: "Thick Hide", DamageReduction: 3},
	}

	state, err := svc.CreateCombat(&combat.CreateCombatInput{
		Participants: []*entities.CombatParticipant{hero, companion, ogre},
		Victory:      []entities.VictoryCondition{{Type: entities.VictoryDefeatAllEnemies}},
		Defeat:       []entities.DefeatCondition{{Type: entities.DefeatPlayerDeath}},
	})
	if err != nil {
		log.Fatalf("Failed to create combat: %v", err)
	}

	log.Printf("Encounter %s, turn order: %v", state.ID, state.TurnOrder)

	for i := 0; !state.Ended && i < 200; i++ {
		actor := state.CurrentParticipant()
		action := chooseAction(state, actor)

		result, err := svc.ProcessAction(state, action)
		if err != nil {
			log.Fatalf("Process action: %v", err)
		}
		if !result.Success {
			log.Fatalf("Action rejected: %s", result.ActionResult.Reason)
		}
		state = result.State
		if result.CombatEnd != nil {
			log.Printf("Combat over: %s (%s)", result.CombatEnd.Reason, state.Outcome)
		}
	}

	fmt.Println("--- action history ---")
	for _, rec := range state.ActionHistory {
		fmt.Printf("round %d: %s\n", rec.Round, rec.Description)
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		repo := encounters.NewRedisRepository(&encounters.RedisRepoConfig{Client: client})
		if err := repo.Save(context.Background(), state); err != nil {
			log.Printf("Failed to persist encounter: %v", err)
		} else {
			log.Printf("Persisted encounter %s", state.ID)
		}
	}
}

// chooseAction is a dumb policy: heal when hurt and able, otherwise hit
// the first living opponent.
func chooseAction(state *entities.CombatState, actor *entities.CombatParticipant) *entities.CombatAction {
	if actor == nil {
		return &entities.CombatAction{Type: entities.ActionWait}
	}

	for _, skill := range actor.Skills {
		if skill.Healing && skill.CurrentCooldown == 0 && actor.Mana >= skill.ManaCost {
			for _, p := range state.Participants {
				if p.IsAlive() && p.Type != entities.ParticipantTypeEnemy && p.Health < p.MaxHealth/2 {
					return &entities.CombatAction{
						Type: entities.ActionSkill, ActorID: actor.ID, TargetID: p.ID, SkillID: skill.ID,
					}
				}
			}
		}
	}

	actorIsEnemy := actor.Type == entities.ParticipantTypeEnemy
	for _, p := range state.Participants {
		if p.IsAlive() && (p.Type == entities.ParticipantTypeEnemy) != actorIsEnemy {
			return &entities.CombatAction{Type: entities.ActionAttack, ActorID: actor.ID, TargetID: p.ID}
		}
	}

	return &entities.CombatAction{Type: entities.ActionWait, ActorID: actor.ID}
}
