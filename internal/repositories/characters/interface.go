package characters

//go:generate mockgen -destination=mock/mock_repository.go -package=mockcharacters -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/storyforge/internal/entities"
)

// Repository persists character profiles as opaque JSON snapshots.
// The engines never touch this layer; it belongs to the host app.
type Repository interface {
	// Create stores a new character profile
	Create(ctx context.Context, character *entities.CharacterProfile) error

	// Get retrieves a character profile by ID
	Get(ctx context.Context, id string) (*entities.CharacterProfile, error)

	// GetMany retrieves several profiles at once
	GetMany(ctx context.Context, ids []string) ([]*entities.CharacterProfile, error)

	// Update overwrites an existing character profile
	Update(ctx context.Context, character *entities.CharacterProfile) error

	// Delete removes a character profile
	Delete(ctx context.Context, id string) error

	// ListIDs returns every stored character id
	ListIDs(ctx context.Context) ([]string, error)
}
