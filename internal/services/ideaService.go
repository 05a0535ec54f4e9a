package services

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/rs/zerolog/log"

	"appideas/internal/generator"
	"appideas/internal/metrics"
	"appideas/internal/models"
	"appideas/internal/repositories"
)

type SortOrder string

const (
	SortNewest     SortOrder = "newest"
	SortOldest     SortOrder = "oldest"
	SortComplexity SortOrder = "complexity"
)

const MaxPageLimit = models.MaxPageLimit

// ListQuery selects one page of a sorted listing. Zero values take the
// defaults: newest first, page 1 and the service's page size.
type ListQuery struct {
	Sort  SortOrder
	Page  int
	Limit int
}

type IdeaService interface {
	GenerateIdea(ctx context.Context, params models.GenerationParams) (*models.Idea, error)
	PreviewIdea(ctx context.Context, params models.GenerationParams) (*models.Idea, error)
	GetIdeas(ctx context.Context, query ListQuery) (*models.IdeaPage, error)
	GetSavedIdeas(ctx context.Context, query ListQuery) (*models.IdeaPage, error)
	GetIdeaByID(ctx context.Context, id int64) (*models.Idea, error)
	AddIdea(ctx context.Context, idea models.Idea) (*models.Idea, error)
	UpdateIdea(ctx context.Context, id int64, update models.IdeaUpdate) (*models.Idea, error)
	ToggleSaved(ctx context.Context, id int64) (*models.Idea, error)
	DeleteIdea(ctx context.Context, id int64) error
	ClipboardText(ctx context.Context, id int64) (string, error)
}

type ideaServiceImpl struct {
	ideaRepo  repositories.IdeaRepository
	generator *generator.Generator
	pageSize  int
}

func NewIdeaService(ideaRepo repositories.IdeaRepository, gen *generator.Generator, pageSize int) IdeaService {
	return &ideaServiceImpl{ideaRepo: ideaRepo, generator: gen, pageSize: pageSize}
}

func (s *ideaServiceImpl) PreviewIdea(_ context.Context, params models.GenerationParams) (*models.Idea, error) {
	log.Debug().Interface("params", params).Msg("Generating idea preview")
	idea, err := s.generator.Generate(params)
	if err != nil {
		log.Warn().Err(err).Str("category", string(params.Category)).Msg("Idea generation rejected")
		return nil, fmt.Errorf("%w: %w", models.ErrInvalidInput, err)
	}
	metrics.IdeasGeneratedTotal.WithLabelValues(idea.Category).Inc()
	return idea, nil
}

func (s *ideaServiceImpl) GenerateIdea(ctx context.Context, params models.GenerationParams) (*models.Idea, error) {
	idea, err := s.PreviewIdea(ctx, params)
	if err != nil {
		return nil, err
	}

	created, err := s.ideaRepo.Create(ctx, idea)
	if err != nil {
		return nil, err
	}
	metrics.IdeasCreatedTotal.Inc()
	log.Info().Int64("idea_id", created.ID).Str("title", created.Title).Msg("Generated idea stored")
	return created, nil
}

func (s *ideaServiceImpl) GetIdeas(ctx context.Context, query ListQuery) (*models.IdeaPage, error) {
	log.Debug().Interface("query", query).Msg("Attempting to list ideas")
	query, err := s.normalize(query)
	if err != nil {
		return nil, err
	}

	ideas, err := s.ideaRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return paginate(SortIdeas(ideas, query.Sort), query.Page, query.Limit), nil
}

func (s *ideaServiceImpl) GetSavedIdeas(ctx context.Context, query ListQuery) (*models.IdeaPage, error) {
	log.Debug().Interface("query", query).Msg("Attempting to list saved ideas")
	query, err := s.normalize(query)
	if err != nil {
		return nil, err
	}

	ideas, err := s.ideaRepo.FindSaved(ctx)
	if err != nil {
		return nil, err
	}
	return paginate(SortIdeas(ideas, query.Sort), query.Page, query.Limit), nil
}

func (s *ideaServiceImpl) GetIdeaByID(ctx context.Context, id int64) (*models.Idea, error) {
	log.Debug().Int64("idea_id", id).Msg("Attempting to retrieve idea")
	idea, err := s.ideaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return idea, nil
}

func (s *ideaServiceImpl) AddIdea(ctx context.Context, idea models.Idea) (*models.Idea, error) {
	log.Debug().Str("title", idea.Title).Msg("Attempting to add idea")
	idea = withEmptyLists(idea)

	created, err := s.ideaRepo.Create(ctx, &idea)
	if err != nil {
		return nil, err
	}
	metrics.IdeasCreatedTotal.Inc()
	log.Info().Int64("idea_id", created.ID).Str("title", created.Title).Msg("Idea added successfully")
	return created, nil
}

func (s *ideaServiceImpl) UpdateIdea(ctx context.Context, id int64, update models.IdeaUpdate) (*models.Idea, error) {
	log.Debug().Int64("idea_id", id).Msg("Attempting to update idea")
	if update.IsEmpty() {
		log.Warn().Int64("idea_id", id).Msg("No valid fields provided for idea update")
		return nil, models.ErrNoUpdateFields
	}

	updated, err := s.ideaRepo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	log.Info().Int64("idea_id", id).Msg("Idea updated successfully")
	return updated, nil
}

func (s *ideaServiceImpl) ToggleSaved(ctx context.Context, id int64) (*models.Idea, error) {
	log.Debug().Int64("idea_id", id).Msg("Attempting to toggle idea save state")
	updated, err := s.ideaRepo.ToggleSaved(ctx, id)
	if err != nil {
		return nil, err
	}
	metrics.IdeasSaveToggledTotal.WithLabelValues(strconv.FormatBool(updated.Saved)).Inc()
	log.Info().Int64("idea_id", id).Bool("saved", updated.Saved).Msg("Idea save state toggled")
	return updated, nil
}

func (s *ideaServiceImpl) DeleteIdea(ctx context.Context, id int64) error {
	log.Debug().Int64("idea_id", id).Msg("Attempting to delete idea")
	deleted, err := s.ideaRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		log.Warn().Int64("idea_id", id).Msg("Idea not found for deletion")
		return models.ErrIdeaNotFound
	}
	metrics.IdeasDeletedTotal.Inc()
	log.Info().Int64("idea_id", id).Msg("Idea deleted successfully")
	return nil
}

func (s *ideaServiceImpl) ClipboardText(ctx context.Context, id int64) (string, error) {
	idea, err := s.ideaRepo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	return FormatClipboardText(*idea), nil
}

// FormatClipboardText renders the plain-text summary copied to the clipboard.
func FormatClipboardText(idea models.Idea) string {
	return fmt.Sprintf("App Idea: %s\nCategory: %s\nComplexity: %s\nDescription: %s",
		idea.Title, idea.Category, models.ComplexityLabel(idea.Complexity), idea.Description)
}

func (s *ideaServiceImpl) normalize(q ListQuery) (ListQuery, error) {
	if q.Sort == "" {
		q.Sort = SortNewest
	}
	switch q.Sort {
	case SortNewest, SortOldest, SortComplexity:
	default:
		log.Warn().Str("sort", string(q.Sort)).Msg("Unsupported sort order")
		return q, fmt.Errorf("%w: %q", models.ErrInvalidSort, q.Sort)
	}

	if q.Page == 0 {
		q.Page = 1
	}
	if q.Limit == 0 {
		q.Limit = s.pageSize
	}
	if q.Page < 1 || q.Limit < 1 || q.Limit > MaxPageLimit {
		log.Warn().Int("page", q.Page).Int("limit", q.Limit).Msg("Invalid pagination parameters")
		return q, fmt.Errorf("%w: page must be >= 1 and limit between 1 and %d", models.ErrInvalidPage, MaxPageLimit)
	}
	return q, nil
}

// SortIdeas orders ideas in place and returns them. Ties keep id order.
func SortIdeas(ideas []models.Idea, order SortOrder) []models.Idea {
	slices.SortFunc(ideas, func(a, b models.Idea) int {
		var c int
		switch order {
		case SortOldest:
			c = a.CreatedTime().Compare(b.CreatedTime())
		case SortComplexity:
			c = cmp.Compare(b.Complexity, a.Complexity)
		default:
			c = b.CreatedTime().Compare(a.CreatedTime())
		}
		if c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return ideas
}

func paginate(ideas []models.Idea, page, limit int) *models.IdeaPage {
	total := len(ideas)
	totalPages := (total + limit - 1) / limit

	// pages past the end are empty; checked before multiplying so huge pages cannot overflow
	start := total
	if page-1 < totalPages {
		start = (page - 1) * limit
	}
	end := min(start+limit, total)

	return &models.IdeaPage{
		Items:      ideas[start:end],
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		Limit:      limit,
	}
}

func withEmptyLists(idea models.Idea) models.Idea {
	if idea.Features == nil {
		idea.Features = []string{}
	}
	if idea.TechnicalConsiderations == nil {
		idea.TechnicalConsiderations = []string{}
	}
	if idea.Tags == nil {
		idea.Tags = []string{}
	}
	return idea
}
