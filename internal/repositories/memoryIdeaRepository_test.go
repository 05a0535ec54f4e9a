package repositories

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appideas/internal/models"
)

func sampleIdea(title string) *models.Idea {
	return &models.Idea{
		Title:       title,
		Description: "An app.",
		Complexity:  3,
		Category:    "Productivity",
		TechStack:   []string{"WEB"},
		Audience:    "general",
		Features:    []string{"Task list"},
		Tags:        []string{"productivity"},
		CreatedAt:   "2025-01-01T00:00:00.000Z",
	}
}

func TestMemoryIdeaRepositoryCreateAssignsSequentialIDs(t *testing.T) {
	repo := NewMemoryIdeaRepository()
	ctx := context.Background()

	first, err := repo.Create(ctx, sampleIdea("One"))
	require.NoError(t, err)
	second, err := repo.Create(ctx, sampleIdea("Two"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestMemoryIdeaRepositoryReturnsCopies(t *testing.T) {
	repo := NewMemoryIdeaRepository()
	ctx := context.Background()

	input := sampleIdea("One")
	created, err := repo.Create(ctx, input)
	require.NoError(t, err)

	input.Features[0] = "mutated input"
	created.Features[0] = "mutated output"

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Task list"}, found.Features)
}

func TestMemoryIdeaRepositoryFind(t *testing.T) {
	repo := NewMemoryIdeaRepository()
	ctx := context.Background()

	for _, title := range []string{"A", "B", "C"} {
		_, err := repo.Create(ctx, sampleIdea(title))
		require.NoError(t, err)
	}
	_, err := repo.Update(ctx, 2, models.IdeaUpdate{Saved: ptr(true)})
	require.NoError(t, err)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{all[0].ID, all[1].ID, all[2].ID})

	saved, err := repo.FindSaved(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "B", saved[0].Title)

	_, err = repo.FindByID(ctx, 42)
	assert.ErrorIs(t, err, models.ErrIdeaNotFound)
}

func TestMemoryIdeaRepositoryUpdate(t *testing.T) {
	repo := NewMemoryIdeaRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleIdea("Old"))
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, models.IdeaUpdate{Title: ptr("New"), Complexity: ptr(5)})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, 5, updated.Complexity)
	assert.Equal(t, created.Description, updated.Description)

	_, err = repo.Update(ctx, created.ID, models.IdeaUpdate{})
	assert.ErrorIs(t, err, models.ErrNoUpdateFields)

	_, err = repo.Update(ctx, 99, models.IdeaUpdate{Title: ptr("x")})
	assert.ErrorIs(t, err, models.ErrIdeaNotFound)
}

func TestMemoryIdeaRepositoryDelete(t *testing.T) {
	repo := NewMemoryIdeaRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleIdea("Gone"))
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	// ids are never reused
	next, err := repo.Create(ctx, sampleIdea("Next"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), next.ID)
}

func TestMemoryIdeaRepositoryConcurrentCreate(t *testing.T) {
	repo := NewMemoryIdeaRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Create(ctx, sampleIdea("x"))
		}()
	}
	wg.Wait()

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 50)
	assert.Equal(t, "50", repo.Health()["ideas"])
}

func TestMemoryIdeaRepositoryToggleSaved(t *testing.T) {
	repo := NewMemoryIdeaRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleIdea("Flip"))
	require.NoError(t, err)

	toggled, err := repo.ToggleSaved(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Saved)

	toggled, err = repo.ToggleSaved(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Saved)

	_, err = repo.ToggleSaved(ctx, 99)
	assert.ErrorIs(t, err, models.ErrIdeaNotFound)
}

func TestMemoryIdeaRepositoryConcurrentToggleKeepsEveryFlip(t *testing.T) {
	repo := NewMemoryIdeaRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleIdea("Flip"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 101; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.ToggleSaved(ctx, created.ID)
		}()
	}
	wg.Wait()

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, found.Saved)
}

func ptr[T any](v T) *T { return &v }
