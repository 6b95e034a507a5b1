package encounters

import (
	"context"
	"sync"

	"github.com/KirkDiggler/storyforge/internal/entities"
	apperr "github.com/KirkDiggler/storyforge/internal/errors"
)

// inMemoryRepo implements Repository with maps, for tests and local runs
type inMemoryRepo struct {
	mu         sync.RWMutex
	encounters map[string]*entities.CombatState
	active     map[string]string
}

// NewInMemoryRepository creates a new in-memory encounter repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepo{
		encounters: make(map[string]*entities.CombatState),
		active:     make(map[string]string),
	}
}

func (r *inMemoryRepo) Save(_ context.Context, state *entities.CombatState) error {
	if state == nil {
		return apperr.InvalidArgument("combat state cannot be nil")
	}
	if state.ID == "" {
		return apperr.InvalidArgument("combat state ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.encounters[state.ID] = state.Clone()
	return nil
}

func (r *inMemoryRepo) Get(_ context.Context, id string) (*entities.CombatState, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("encounter ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.encounters[id]
	if !ok {
		return nil, apperr.NotFoundf("encounter '%s' not found", id)
	}
	return state.Clone(), nil
}

func (r *inMemoryRepo) Delete(_ context.Context, id string) error {
	if id == "" {
		return apperr.InvalidArgument("encounter ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.encounters, id)
	return nil
}

func (r *inMemoryRepo) SetActive(_ context.Context, sessionID, encounterID string) error {
	if sessionID == "" {
		return apperr.InvalidArgument("session ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.active[sessionID] = encounterID
	return nil
}

func (r *inMemoryRepo) GetActive(ctx context.Context, sessionID string) (*entities.CombatState, error) {
	if sessionID == "" {
		return nil, apperr.InvalidArgument("session ID is required")
	}

	r.mu.RLock()
	encounterID, ok := r.active[sessionID]
	r.mu.RUnlock()

	if !ok {
		return nil, apperr.NotFoundf("no active encounter for session '%s'", sessionID)
	}
	return r.Get(ctx, encounterID)
}
