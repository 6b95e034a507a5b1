package characters

import (
	"context"
	"sync"

	"github.com/KirkDiggler/storyforge/internal/entities"
	apperr "github.com/KirkDiggler/storyforge/internal/errors"
	"github.com/KirkDiggler/storyforge/internal/uuid"
)

// inMemoryRepo implements Repository with a map, for tests and local runs
type inMemoryRepo struct {
	mu            sync.RWMutex
	characters    map[string]*entities.CharacterProfile
	uuidGenerator uuid.Generator
}

// NewInMemoryRepository creates a new in-memory character repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepo{
		characters:    make(map[string]*entities.CharacterProfile),
		uuidGenerator: uuid.NewGoogleUUIDGenerator(),
	}
}

func (r *inMemoryRepo) Create(_ context.Context, character *entities.CharacterProfile) error {
	if character == nil {
		return apperr.InvalidArgument("character cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if character.ID == "" {
		character.ID = r.uuidGenerator.New()
	}
	if _, ok := r.characters[character.ID]; ok {
		return apperr.AlreadyExistsf("character with ID '%s' already exists", character.ID)
	}

	r.characters[character.ID] = entities.NormalizeCharacter(character.Clone())
	return nil
}

func (r *inMemoryRepo) Get(_ context.Context, id string) (*entities.CharacterProfile, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("character ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	character, ok := r.characters[id]
	if !ok {
		return nil, apperr.NotFoundf("character '%s' not found", id)
	}
	return character.Clone(), nil
}

func (r *inMemoryRepo) GetMany(ctx context.Context, ids []string) ([]*entities.CharacterProfile, error) {
	results := make([]*entities.CharacterProfile, len(ids))
	for i, id := range ids {
		character, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		results[i] = character
	}
	return results, nil
}

func (r *inMemoryRepo) Update(_ context.Context, character *entities.CharacterProfile) error {
	if character == nil {
		return apperr.InvalidArgument("character cannot be nil")
	}
	if character.ID == "" {
		return apperr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.characters[character.ID]; !ok {
		return apperr.NotFoundf("character '%s' not found", character.ID)
	}

	r.characters[character.ID] = entities.NormalizeCharacter(character.Clone())
	return nil
}

func (r *inMemoryRepo) Delete(_ context.Context, id string) error {
	if id == "" {
		return apperr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.characters, id)
	return nil
}

func (r *inMemoryRepo) ListIDs(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.characters))
	for id := range r.characters {
		ids = append(ids, id)
	}
	return ids, nil
}
