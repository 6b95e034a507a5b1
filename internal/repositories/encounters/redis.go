package encounters

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/storyforge/internal/entities"
	apperr "github.com/KirkDiggler/storyforge/internal/errors"
)

// redisRepo implements Repository using Redis
type redisRepo struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient

	// TTL bounds how long an encounter snapshot lives; zero means the
	// default of 24 hours. Encounters are per-session scratch state,
	// not long-term records.
	TTL time.Duration
}

// NewRedisRepository creates a new Redis-backed encounter repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = 24 * time.Hour
	}

	return &redisRepo{
		client: cfg.Client,
		ttl:    ttl,
	}
}

func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("encounter:%s", id)
}

func (r *redisRepo) activeKey(sessionID string) string {
	return fmt.Sprintf("session:%s:active_encounter", sessionID)
}

// Save stores or overwrites a combat state snapshot
func (r *redisRepo) Save(ctx context.Context, state *entities.CombatState) error {
	if state == nil {
		return apperr.InvalidArgument("combat state cannot be nil")
	}
	if state.ID == "" {
		return apperr.InvalidArgument("combat state ID is required")
	}

	jsonData, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal combat state: %w", err)
	}

	if err := r.client.Set(ctx, r.key(state.ID), jsonData, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save combat state: %w", err)
	}
	return nil
}

// Get retrieves a combat state by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*entities.CombatState, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("encounter ID is required")
	}

	data, err := r.client.Get(ctx, r.key(id)).Result()
	if err == redis.Nil {
		return nil, apperr.NotFoundf("encounter '%s' not found", id).
			WithMeta("encounter_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get combat state: %w", err)
	}

	var state entities.CombatState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal combat state: %w", err)
	}
	return &state, nil
}

// Delete removes a combat state
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperr.InvalidArgument("encounter ID is required")
	}
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete combat state: %w", err)
	}
	return nil
}

// SetActive marks an encounter as the active one for a session
func (r *redisRepo) SetActive(ctx context.Context, sessionID, encounterID string) error {
	if sessionID == "" {
		return apperr.InvalidArgument("session ID is required")
	}
	if err := r.client.Set(ctx, r.activeKey(sessionID), encounterID, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set active encounter: %w", err)
	}
	return nil
}

// GetActive retrieves the active encounter for a session
func (r *redisRepo) GetActive(ctx context.Context, sessionID string) (*entities.CombatState, error) {
	if sessionID == "" {
		return nil, apperr.InvalidArgument("session ID is required")
	}

	encounterID, err := r.client.Get(ctx, r.activeKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, apperr.NotFoundf("no active encounter for session '%s'", sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active encounter: %w", err)
	}

	return r.Get(ctx, encounterID)
}
