package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/keydrill/internal/models"
	"github.com/vytor/keydrill/internal/repository/memory"
)

func TestCatalog_LookupAndList(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCatalogRepository()
	require.NoError(t, repo.Upsert(ctx, []models.Shortcut{
		{ID: "b", Name: "Blame", Category: models.CategoryGit, Difficulty: models.DifficultyAdvanced},
		{ID: "a", Name: "Ask", Category: models.CategoryAI, Difficulty: models.DifficultyBeginner},
	}))

	found, err := repo.Lookup(ctx, []string{"a", "zzz"})
	require.NoError(t, err)
	assert.Len(t, found, 1)
	assert.Equal(t, "Ask", found["a"].Name)

	all, err := repo.List(ctx, models.CatalogFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ID)

	git, err := repo.List(ctx, models.CatalogFilter{Categories: []models.Category{models.CategoryGit}})
	require.NoError(t, err)
	require.Len(t, git, 1)
	assert.Equal(t, "b", git[0].ID)
}

func TestCatalog_UpsertReplaces(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCatalogRepository()
	require.NoError(t, repo.Upsert(ctx, []models.Shortcut{{ID: "a", Name: "old", Category: models.CategoryAI, Difficulty: models.DifficultyBeginner}}))
	require.NoError(t, repo.Upsert(ctx, []models.Shortcut{{ID: "a", Name: "new", Category: models.CategoryAI, Difficulty: models.DifficultyExpert}}))

	found, err := repo.Lookup(ctx, []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, "new", found["a"].Name)
	assert.Equal(t, models.DifficultyExpert, found["a"].Difficulty)
}
