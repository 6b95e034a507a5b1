package combat

//go:generate mockgen -destination=mock/mock_service.go -package=mockcombat -source=service.go

import (
	"time"

	"github.com/KirkDiggler/storyforge/internal/entities"
	apperr "github.com/KirkDiggler/storyforge/internal/errors"
	"github.com/KirkDiggler/storyforge/internal/rng"
	"github.com/KirkDiggler/storyforge/internal/uuid"
)

// Service defines the combat resolution engine. All methods are
// synchronous state transformers; the only randomness comes from the
// injected source and the only clock read from the injected clock.
type Service interface {
	// CreateCombat builds a fresh encounter: rolls initiative once,
	// seats the first actor, and stamps the start time
	CreateCombat(input *CreateCombatInput) (*entities.CombatState, error)

	// ProcessAction validates and resolves one action. Game-flow
	// rejections come back as an invalid ActionResult on an unchanged
	// state, never as an error.
	ProcessAction(state *entities.CombatState, action *entities.CombatAction) (*entities.CombatTurnResult, error)

	// ValidateAction runs only the validation half of ProcessAction
	ValidateAction(state *entities.CombatState, action *entities.CombatAction) *ValidationResult

	// CalculateDamage computes a full damage breakdown for an attack or
	// damaging skill without applying it
	CalculateDamage(state *entities.CombatState, attacker, target *entities.CombatParticipant, skill *entities.CombatSkill) *entities.DamageResult

	// CalculateHealing computes a full healing breakdown without
	// applying it
	CalculateHealing(actor, target *entities.CombatParticipant, baseHealing int, fromSkill bool) *entities.HealingResult

	// RollInitiative rolls speed + d20-scaled randomness per
	// participant and returns the descending turn order. Called once
	// per encounter.
	RollInitiative(participants []*entities.CombatParticipant) []string

	// ApplyStatusEffect attaches an effect to a participant, honoring
	// the stacking cap
	ApplyStatusEffect(participant *entities.CombatParticipant, effect *entities.StatusEffect)

	// TickStatusEffects applies one tick of every effect matching the
	// given timing and expires effects whose duration runs out
	TickStatusEffects(participant *entities.CombatParticipant, timing entities.TickTiming)

	// CheckCombatEnd evaluates victory then defeat conditions in
	// declared order; the first match wins
	CheckCombatEnd(state *entities.CombatState) *entities.CombatEndResult
}

// CreateCombatInput contains data for building an encounter
type CreateCombatInput struct {
	Participants []*entities.CombatParticipant
	Victory      []entities.VictoryCondition
	Defeat       []entities.DefeatCondition
	Environment  []*entities.EnvironmentEffect
}

// ValidationResult is an expected game-flow verdict, not an error
type ValidationResult struct {
	Valid  bool
	Reason string
}

type service struct {
	rng   rng.Source
	clock func() time.Time
	uuid  uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	// RNG supplies every random draw; defaults to a time-seeded source
	RNG rng.Source

	// Clock supplies the wall clock for time_limit checks; defaults to
	// time.Now
	Clock func() time.Time

	// UUIDGenerator supplies encounter ids
	UUIDGenerator uuid.Generator
}

// NewService creates a new combat service
func NewService(cfg *ServiceConfig) Service {
	svc := &service{
		clock: time.Now,
		uuid:  uuid.NewGoogleUUIDGenerator(),
	}

	if cfg != nil {
		if cfg.RNG != nil {
			svc.rng = cfg.RNG
		}
		if cfg.Clock != nil {
			svc.clock = cfg.Clock
		}
		if cfg.UUIDGenerator != nil {
			svc.uuid = cfg.UUIDGenerator
		}
	}
	if svc.rng == nil {
		svc.rng = rng.NewRandSource(time.Now().UnixNano())
	}

	return svc
}

// CreateCombat builds the per-encounter aggregate. Initiative is the
// one place randomness fixes irreversible structure, so it is rolled
// here and never again.
func (s *service) CreateCombat(input *CreateCombatInput) (*entities.CombatState, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}
	if len(input.Participants) == 0 {
		return nil, apperr.InvalidArgument("combat requires at least one participant")
	}

	participants := make([]*entities.CombatParticipant, 0, len(input.Participants))
	for _, p := range input.Participants {
		if p == nil || p.ID == "" {
			return nil, apperr.InvalidArgument("participants must have ids")
		}
		clone := p.Clone()
		clone.ActionPoints = clone.MaxActionPoints
		if clone.CritMultiplier < 1.0 {
			clone.CritMultiplier = 1.0
		}
		participants = append(participants, clone)
	}

	state := &entities.CombatState{
		ID:            s.uuid.New(),
		Participants:  participants,
		TurnOrder:     s.RollInitiative(participants),
		Round:         1,
		StartedAt:     s.clock(),
		Environment:   input.Environment,
		Victory:       input.Victory,
		Defeat:        input.Defeat,
		ActionHistory: []entities.ActionRecord{},
	}
	if len(state.TurnOrder) > 0 {
		state.CurrentTurnID = state.TurnOrder[0]
	}

	return state, nil
}
