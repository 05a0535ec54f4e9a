package repositories

import (
	"context"
	"slices"
	"strconv"
	"sync"

	"appideas/internal/models"
)

// MemoryIdeaRepository keeps ideas in process memory. Ids start at 1.
type MemoryIdeaRepository struct {
	mu     sync.RWMutex
	ideas  map[int64]models.Idea
	nextID int64
}

func NewMemoryIdeaRepository() *MemoryIdeaRepository {
	return &MemoryIdeaRepository{
		ideas:  make(map[int64]models.Idea),
		nextID: 1,
	}
}

func (r *MemoryIdeaRepository) Create(_ context.Context, idea *models.Idea) (*models.Idea, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := idea.Clone()
	stored.ID = r.nextID
	r.nextID++
	r.ideas[stored.ID] = stored

	out := stored.Clone()
	return &out, nil
}

func (r *MemoryIdeaRepository) FindAll(_ context.Context) ([]models.Idea, error) {
	return r.collect(func(models.Idea) bool { return true }), nil
}

func (r *MemoryIdeaRepository) FindSaved(_ context.Context) ([]models.Idea, error) {
	return r.collect(func(i models.Idea) bool { return i.Saved }), nil
}

func (r *MemoryIdeaRepository) collect(keep func(models.Idea) bool) []models.Idea {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ideas := make([]models.Idea, 0, len(r.ideas))
	for _, idea := range r.ideas {
		if keep(idea) {
			ideas = append(ideas, idea.Clone())
		}
	}
	slices.SortFunc(ideas, func(a, b models.Idea) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return ideas
}

func (r *MemoryIdeaRepository) FindByID(_ context.Context, id int64) (*models.Idea, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idea, ok := r.ideas[id]
	if !ok {
		return nil, models.ErrIdeaNotFound
	}
	out := idea.Clone()
	return &out, nil
}

func (r *MemoryIdeaRepository) Update(_ context.Context, id int64, update models.IdeaUpdate) (*models.Idea, error) {
	if update.IsEmpty() {
		return nil, models.ErrNoUpdateFields
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	idea, ok := r.ideas[id]
	if !ok {
		return nil, models.ErrIdeaNotFound
	}
	update.Apply(&idea)
	r.ideas[id] = idea

	out := idea.Clone()
	return &out, nil
}

func (r *MemoryIdeaRepository) ToggleSaved(_ context.Context, id int64) (*models.Idea, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idea, ok := r.ideas[id]
	if !ok {
		return nil, models.ErrIdeaNotFound
	}
	idea.Saved = !idea.Saved
	r.ideas[id] = idea

	out := idea.Clone()
	return &out, nil
}

func (r *MemoryIdeaRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ideas[id]; !ok {
		return false, nil
	}
	delete(r.ideas, id)
	return true, nil
}

func (r *MemoryIdeaRepository) Health() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return map[string]string{
		"message": "It's healthy",
		"storage": "memory",
		"ideas":   strconv.Itoa(len(r.ideas)),
	}
}
