package encounters

//go:generate mockgen -destination=mock/mock_repository.go -package=mockencounters -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/storyforge/internal/entities"
)

// Repository persists combat state snapshots. Encounters are transient,
// so implementations may expire them.
type Repository interface {
	// Save stores or overwrites a combat state snapshot
	Save(ctx context.Context, state *entities.CombatState) error

	// Get retrieves a combat state by ID
	Get(ctx context.Context, id string) (*entities.CombatState, error)

	// Delete removes a combat state
	Delete(ctx context.Context, id string) error

	// SetActive marks an encounter as the active one for a session
	SetActive(ctx context.Context, sessionID, encounterID string) error

	// GetActive retrieves the active encounter for a session
	GetActive(ctx context.Context, sessionID string) (*entities.CombatState, error)
}
