package characters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/storyforge/internal/entities"
	apperr "github.com/KirkDiggler/storyforge/internal/errors"
	"github.com/KirkDiggler/storyforge/internal/repositories/characters"
	"github.com/KirkDiggler/storyforge/internal/testutils"
)

func TestInMemoryRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := characters.NewInMemoryRepository()

	character := testutils.NewTestCharacter("char-1")
	require.NoError(t, repo.Create(ctx, character))

	// Creating again with the same ID fails.
	err := repo.Create(ctx, testutils.NewTestCharacter("char-1"))
	assert.True(t, apperr.Is(err, apperr.CodeAlreadyExists))

	got, err := repo.Get(ctx, "char-1")
	require.NoError(t, err)
	assert.Equal(t, "char-1", got.ID)
	assert.Equal(t, character.Level, got.Level)

	// The stored copy is independent of what callers hold.
	got.Level = 50
	again, err := repo.Get(ctx, "char-1")
	require.NoError(t, err)
	assert.Equal(t, character.Level, again.Level)

	got.Level = 7
	require.NoError(t, repo.Update(ctx, got))
	updated, err := repo.Get(ctx, "char-1")
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Level)

	ids, err := repo.ListIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"char-1"}, ids)

	require.NoError(t, repo.Delete(ctx, "char-1"))
	_, err = repo.Get(ctx, "char-1")
	assert.True(t, apperr.IsNotFound(err))
}

func TestInMemoryRepository_GeneratesID(t *testing.T) {
	ctx := context.Background()
	repo := characters.NewInMemoryRepository()

	character := testutils.NewTestCharacter("")
	character.ID = ""
	require.NoError(t, repo.Create(ctx, character))
	assert.NotEmpty(t, character.ID)
}

func TestInMemoryRepository_GetMany(t *testing.T) {
	ctx := context.Background()
	repo := characters.NewInMemoryRepository()

	require.NoError(t, repo.Create(ctx, testutils.NewTestCharacter("char-1")))
	require.NoError(t, repo.Create(ctx, testutils.NewTestCharacter("char-2")))

	got, err := repo.GetMany(ctx, []string{"char-1", "char-2"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "char-1", got[0].ID)
	assert.Equal(t, "char-2", got[1].ID)

	_, err = repo.GetMany(ctx, []string{"char-1", "missing"})
	assert.True(t, apperr.IsNotFound(err))
}

func TestInMemoryRepository_InvalidInput(t *testing.T) {
	ctx := context.Background()
	repo := characters.NewInMemoryRepository()

	assert.Error(t, repo.Create(ctx, nil))
	assert.Error(t, repo.Update(ctx, nil))
	assert.Error(t, repo.Update(ctx, &entities.CharacterProfile{}))

	_, err := repo.Get(ctx, "")
	assert.Error(t, err)
	assert.Error(t, repo.Delete(ctx, ""))
}
