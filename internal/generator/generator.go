// Package generator assembles app ideas from the catalog's template tables.
package generator

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"appideas/internal/catalog"
	"appideas/internal/models"
)

// Generator turns GenerationParams into ideas. It keeps no state between
// calls and is safe for concurrent use when its Source is.
type Generator struct {
	catalog *catalog.Catalog
	rand    Source
	now     func() time.Time
}

type Option func(*Generator)

// WithClock overrides the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

func New(cat *catalog.Catalog, src Source, opts ...Option) *Generator {
	g := &Generator{
		catalog: cat,
		rand:    src,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds one idea. The only failure is a category that is neither
// "all" nor present in the catalog. Unknown technologies and audiences
// contribute nothing.
func (g *Generator) Generate(params models.GenerationParams) (*models.Idea, error) {
	params = params.WithDefaults()

	categoryKey := params.Category
	if categoryKey == catalog.AllCategories {
		categoryKey = pick(g.rand, g.catalog.CategoryKeys())
	}
	category, ok := g.catalog.Category(categoryKey)
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownCategory, categoryKey)
	}

	techFocus := params.TechFocus
	if len(techFocus) == 0 {
		techFocus = []catalog.TechKey{catalog.DefaultTechnology}
	}

	// The primary technology only feeds supplemental content; the tech
	// stack always lists the whole focus.
	tech, hasTech := g.catalog.Technology(pick(g.rand, techFocus))
	audience, hasAudience := g.catalog.Audience(params.Audience)

	var prefix, suffix string
	if g.rand.Float64() > 0.5 && hasTech && len(tech.Titles) > 0 {
		fragment := pick(g.rand, tech.Titles)
		prefix, suffix = fragment.Prefix, fragment.Suffix
	} else {
		prefix = pick(g.rand, category.Prefixes)
		suffix = pick(g.rand, category.Suffixes)
	}

	description := pick(g.rand, category.Descriptions)

	features := slices.Clone(pick(g.rand, category.Features))
	if hasTech {
		features = append(features, subset(g.rand, tech.Features, 1, 3)...)
	}
	if hasAudience {
		features = append(features, subset(g.rand, audience.Features, 1, 2)...)
	}

	technical := slices.Clone(pick(g.rand, category.Technical))
	if hasTech {
		technical = append(technical, subset(g.rand, tech.Technical, 1, 2)...)
	}

	categoryTags := subset(g.rand, category.Tags, 2, 3)
	var audienceTags []string
	if hasAudience {
		audienceTags = subset(g.rand, audience.Tags, 1, 2)
	}
	tags := make([]string, 0, len(categoryTags)+2+len(audienceTags))
	tags = append(tags, categoryTags...)
	for _, key := range techFocus[:min(2, len(techFocus))] {
		tags = append(tags, string(key))
	}
	tags = append(tags, audienceTags...)

	techStack := make([]string, len(techFocus))
	for i, key := range techFocus {
		techStack[i] = strings.ToUpper(string(key))
	}

	return &models.Idea{
		Title:                   prefix + " " + suffix,
		Description:             description,
		Complexity:              AdjustComplexity(params.Complexity, len(features)),
		Category:                category.Name,
		TechStack:               techStack,
		Audience:                string(params.Audience),
		Features:                features,
		TechnicalConsiderations: technical,
		Tags:                    dedupe(tags),
		Saved:                   false,
		CreatedAt:               models.FormatTimestamp(g.now()),
	}, nil
}

// AdjustComplexity raises the base complexity by one for more than seven
// features, lowers it by one for fewer than five, and clamps to [1,5].
func AdjustComplexity(base, featureCount int) int {
	adjusted := base
	if featureCount > 7 {
		adjusted++
	}
	if featureCount < 5 {
		adjusted--
	}
	return max(models.MinComplexity, min(adjusted, models.MaxComplexity))
}

func pick[T any](src Source, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[src.Intn(len(items))]
}

// subset draws between lo and hi distinct items (capped at len(items)) in shuffled order.
func subset[T any](src Source, items []T, lo, hi int) []T {
	if len(items) == 0 {
		return nil
	}
	count := lo + src.Intn(hi-lo+1)

	shuffled := slices.Clone(items)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled[:min(count, len(shuffled))]
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
