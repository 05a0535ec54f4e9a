package models

import "appideas/internal/catalog"

// GenerateIdeaRequestBody is the payload of the generate endpoints. Absent
// fields take the GenerationParams defaults.
type GenerateIdeaRequestBody struct {
	Complexity *int                 `json:"complexity" validate:"omitempty,min=1,max=5"`
	Category   *catalog.CategoryKey `json:"category" validate:"omitempty,category"`
	TechFocus  []catalog.TechKey    `json:"techFocus" validate:"omitempty,dive,technology"`
	Audience   *catalog.AudienceKey `json:"audience" validate:"omitempty,audience"`
}

func (b GenerateIdeaRequestBody) Params() GenerationParams {
	var p GenerationParams
	if b.Complexity != nil {
		p.Complexity = *b.Complexity
	}
	if b.Category != nil {
		p.Category = *b.Category
	}
	if b.Audience != nil {
		p.Audience = *b.Audience
	}
	p.TechFocus = append([]catalog.TechKey(nil), b.TechFocus...)
	return p.WithDefaults()
}

// AddIdeaRequestBody stores a fully formed idea.
type AddIdeaRequestBody struct {
	Title                   string   `json:"title" validate:"required"`
	Description             string   `json:"description" validate:"required"`
	Complexity              int      `json:"complexity" validate:"min=1,max=5"`
	Category                string   `json:"category" validate:"required"`
	TechStack               []string `json:"techStack" validate:"required,min=1"`
	Audience                string   `json:"audience" validate:"required"`
	Features                []string `json:"features"`
	TechnicalConsiderations []string `json:"technicalConsiderations"`
	Tags                    []string `json:"tags"`
	Saved                   bool     `json:"saved"`
	CreatedAt               string   `json:"createdAt" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

func (b AddIdeaRequestBody) Idea() Idea {
	return Idea{
		Title:                   b.Title,
		Description:             b.Description,
		Complexity:              b.Complexity,
		Category:                b.Category,
		TechStack:               b.TechStack,
		Audience:                b.Audience,
		Features:                b.Features,
		TechnicalConsiderations: b.TechnicalConsiderations,
		Tags:                    b.Tags,
		Saved:                   b.Saved,
		CreatedAt:               b.CreatedAt,
	}.Clone()
}

// IdeaUpdate carries the fields of a partial update. Nil fields are left untouched.
type IdeaUpdate struct {
	Title                   *string   `json:"title,omitempty" validate:"omitempty,min=1"`
	Description             *string   `json:"description,omitempty" validate:"omitempty,min=1"`
	Complexity              *int      `json:"complexity,omitempty" validate:"omitempty,min=1,max=5"`
	Category                *string   `json:"category,omitempty" validate:"omitempty,min=1"`
	TechStack               *[]string `json:"techStack,omitempty" validate:"omitempty,min=1"`
	Audience                *string   `json:"audience,omitempty" validate:"omitempty,min=1"`
	Features                *[]string `json:"features,omitempty"`
	TechnicalConsiderations *[]string `json:"technicalConsiderations,omitempty"`
	Tags                    *[]string `json:"tags,omitempty"`
	Saved                   *bool     `json:"saved,omitempty"`
}

func (u IdeaUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Complexity == nil &&
		u.Category == nil && u.TechStack == nil && u.Audience == nil &&
		u.Features == nil && u.TechnicalConsiderations == nil && u.Tags == nil &&
		u.Saved == nil
}

// Apply copies the set fields onto idea.
func (u IdeaUpdate) Apply(idea *Idea) {
	if u.Title != nil {
		idea.Title = *u.Title
	}
	if u.Description != nil {
		idea.Description = *u.Description
	}
	if u.Complexity != nil {
		idea.Complexity = *u.Complexity
	}
	if u.Category != nil {
		idea.Category = *u.Category
	}
	if u.TechStack != nil {
		idea.TechStack = append([]string(nil), (*u.TechStack)...)
	}
	if u.Audience != nil {
		idea.Audience = *u.Audience
	}
	if u.Features != nil {
		idea.Features = append([]string(nil), (*u.Features)...)
	}
	if u.TechnicalConsiderations != nil {
		idea.TechnicalConsiderations = append([]string(nil), (*u.TechnicalConsiderations)...)
	}
	if u.Tags != nil {
		idea.Tags = append([]string(nil), (*u.Tags)...)
	}
	if u.Saved != nil {
		idea.Saved = *u.Saved
	}
}
