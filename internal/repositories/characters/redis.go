package characters

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/storyforge/internal/entities"
	apperr "github.com/KirkDiggler/storyforge/internal/errors"
	"github.com/KirkDiggler/storyforge/internal/uuid"
)

const characterIndexKey = "characters:all"

// characterRecord is the serialized form of a character in Redis
type characterRecord struct {
	Character *entities.CharacterProfile `json:"character"`
	CreatedAt time.Time                  `json:"created_at"`
	UpdatedAt time.Time                  `json:"updated_at"`
}

// redisRepo implements Repository using Redis
type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator
}

// NewRedisRepository creates a new Redis-backed character repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}
	if cfg.UUIDGenerator == nil {
		cfg.UUIDGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return &redisRepo{
		client:        cfg.Client,
		uuidGenerator: cfg.UUIDGenerator,
	}
}

// key generates the Redis key for a character
func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("character:%s", id)
}

// Create stores a new character
func (r *redisRepo) Create(ctx context.Context, character *entities.CharacterProfile) error {
	if character == nil {
		return apperr.InvalidArgument("character cannot be nil")
	}
	if character.ID == "" {
		character.ID = r.uuidGenerator.New()
	}

	exists, err := r.client.Exists(ctx, r.key(character.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check character existence: %w", err)
	}
	if exists > 0 {
		return apperr.AlreadyExistsf("character with ID '%s' already exists", character.ID).
			WithMeta("character_id", character.ID)
	}

	now := time.Now().UTC()
	record := characterRecord{
		Character: entities.NormalizeCharacter(character.Clone()),
		CreatedAt: now,
		UpdatedAt: now,
	}

	jsonData, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	// Pipeline keeps the blob write and the index update together.
	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(character.ID), string(jsonData), 0)
	pipe.SAdd(ctx, characterIndexKey, character.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create character: %w", err)
	}

	return nil
}

// Get retrieves a character by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*entities.CharacterProfile, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("character ID is required")
	}

	data, err := r.client.Get(ctx, r.key(id)).Result()
	if err == redis.Nil {
		return nil, apperr.NotFoundf("character '%s' not found", id).
			WithMeta("character_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	var record characterRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal character: %w", err)
	}

	return entities.NormalizeCharacter(record.Character), nil
}

// GetMany retrieves several characters in parallel
func (r *redisRepo) GetMany(ctx context.Context, ids []string) ([]*entities.CharacterProfile, error) {
	results := make([]*entities.CharacterProfile, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			character, err := r.Get(gctx, id)
			if err != nil {
				return err
			}
			results[i] = character
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Update overwrites an existing character
func (r *redisRepo) Update(ctx context.Context, character *entities.CharacterProfile) error {
	if character == nil {
		return apperr.InvalidArgument("character cannot be nil")
	}
	if character.ID == "" {
		return apperr.InvalidArgument("character ID is required")
	}

	exists, err := r.client.Exists(ctx, r.key(character.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check character existence: %w", err)
	}
	if exists == 0 {
		return apperr.NotFoundf("character '%s' not found", character.ID).
			WithMeta("character_id", character.ID)
	}

	record := characterRecord{
		Character: entities.NormalizeCharacter(character.Clone()),
		UpdatedAt: time.Now().UTC(),
	}

	jsonData, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	if err := r.client.Set(ctx, r.key(character.ID), jsonData, 0).Err(); err != nil {
		return fmt.Errorf("failed to update character: %w", err)
	}

	return nil
}

// Delete removes a character
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperr.InvalidArgument("character ID is required")
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	pipe.SRem(ctx, characterIndexKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}

	return nil
}

// ListIDs returns every stored character id
func (r *redisRepo) ListIDs(ctx context.Context) ([]string, error) {
	ids, err := r.client.SMembers(ctx, characterIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	return ids, nil
}
