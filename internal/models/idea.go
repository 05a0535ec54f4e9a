package models

import (
	"slices"
	"time"

	"appideas/internal/catalog"
)

// TimestampLayout is the ISO-8601 form used for CreatedAt (millisecond precision, UTC).
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

const (
	MinComplexity     = 1
	MaxComplexity     = 5
	DefaultComplexity = 3
)

// MaxPageLimit caps the number of ideas in one listing page.
const MaxPageLimit = 100

type Idea struct {
	ID                      int64    `json:"id" bson:"_id"`
	Title                   string   `json:"title" bson:"title"`
	Description             string   `json:"description" bson:"description"`
	Complexity              int      `json:"complexity" bson:"complexity"`
	Category                string   `json:"category" bson:"category"`
	TechStack               []string `json:"techStack" bson:"tech_stack"`
	Audience                string   `json:"audience" bson:"audience"`
	Features                []string `json:"features" bson:"features"`
	TechnicalConsiderations []string `json:"technicalConsiderations" bson:"technical_considerations"`
	Tags                    []string `json:"tags" bson:"tags"`
	Saved                   bool     `json:"saved" bson:"saved"`
	CreatedAt               string   `json:"createdAt" bson:"created_at"`
}

// Clone returns a deep copy of the idea.
func (i Idea) Clone() Idea {
	i.TechStack = slices.Clone(i.TechStack)
	i.Features = slices.Clone(i.Features)
	i.TechnicalConsiderations = slices.Clone(i.TechnicalConsiderations)
	i.Tags = slices.Clone(i.Tags)
	return i
}

// CreatedTime parses CreatedAt. The zero time is returned for unparsable values.
func (i Idea) CreatedTime() time.Time {
	t, err := time.Parse(time.RFC3339Nano, i.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}

// FormatTimestamp renders t the way CreatedAt is stored.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// GenerationParams is the input of the idea generator.
type GenerationParams struct {
	Complexity int                 `json:"complexity"`
	Category   catalog.CategoryKey `json:"category"`
	TechFocus  []catalog.TechKey   `json:"techFocus"`
	Audience   catalog.AudienceKey `json:"audience"`
}

// WithDefaults fills unset fields with complexity 3, category "all" and
// audience "general". An empty TechFocus is left empty.
func (p GenerationParams) WithDefaults() GenerationParams {
	if p.Complexity == 0 {
		p.Complexity = DefaultComplexity
	}
	if p.Category == "" {
		p.Category = catalog.AllCategories
	}
	if p.Audience == "" {
		p.Audience = catalog.DefaultAudience
	}
	return p
}

var complexityLabels = map[int]string{
	1: "Simple",
	2: "Basic",
	3: "Moderate",
	4: "Challenging",
	5: "Complex",
}

// ComplexityLabel names a complexity level. Unknown levels read as "Moderate".
func ComplexityLabel(complexity int) string {
	if label, ok := complexityLabels[complexity]; ok {
		return label
	}
	return complexityLabels[DefaultComplexity]
}

// IdeaPage is one page of a sorted idea listing.
type IdeaPage struct {
	Items      []Idea
	Total      int
	TotalPages int
	Page       int
	Limit      int
}
