package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"appideas/internal/catalog"
	"appideas/internal/models"
	"appideas/internal/services"
	"appideas/internal/utils"
	"appideas/internal/validation"
)

type GeneratorHandler struct {
	service   services.IdeaService
	validator *validation.Validator
	options   OptionsResponse
}

type Option struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type ComplexityOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// OptionsResponse lists every choice a generation request can make.
type OptionsResponse struct {
	Categories   []Option           `json:"categories"`
	Technologies []Option           `json:"technologies"`
	Audiences    []Option           `json:"audiences"`
	Complexities []ComplexityOption `json:"complexities"`
}

func NewGeneratorHandler(service services.IdeaService, validator *validation.Validator, cat *catalog.Catalog) *GeneratorHandler {
	return &GeneratorHandler{service: service, validator: validator, options: buildOptions(cat)}
}

func buildOptions(cat *catalog.Catalog) OptionsResponse {
	opts := OptionsResponse{
		Categories: []Option{{Key: string(catalog.AllCategories), Label: "All Categories"}},
	}
	for _, key := range cat.CategoryKeys() {
		c, _ := cat.Category(key)
		opts.Categories = append(opts.Categories, Option{Key: string(key), Label: c.Name})
	}
	for _, key := range cat.TechKeys() {
		t, _ := cat.Technology(key)
		opts.Technologies = append(opts.Technologies, Option{Key: string(key), Label: t.Label})
	}
	for _, key := range cat.AudienceKeys() {
		a, _ := cat.Audience(key)
		opts.Audiences = append(opts.Audiences, Option{Key: string(key), Label: a.Label})
	}
	for c := models.MinComplexity; c <= models.MaxComplexity; c++ {
		opts.Complexities = append(opts.Complexities, ComplexityOption{Value: c, Label: models.ComplexityLabel(c)})
	}
	return opts
}

func (h *GeneratorHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, h.options)
}

func (h *GeneratorHandler) GenerateIdea(w http.ResponseWriter, r *http.Request) {
	params, ok := h.decodeParams(w, r)
	if !ok {
		return
	}

	idea, err := h.service.GenerateIdea(r.Context(), params)
	if err != nil {
		sendServiceError(w, err, "generating idea")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, idea)
}

func (h *GeneratorHandler) PreviewIdea(w http.ResponseWriter, r *http.Request) {
	params, ok := h.decodeParams(w, r)
	if !ok {
		return
	}

	idea, err := h.service.PreviewIdea(r.Context(), params)
	if err != nil {
		sendServiceError(w, err, "previewing idea")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, idea)
}

func (h *GeneratorHandler) decodeParams(w http.ResponseWriter, r *http.Request) (models.GenerationParams, bool) {
	var body models.GenerateIdeaRequestBody
	if err := utils.DecodeJSONBody(r, &body, true); err != nil {
		log.Warn().Err(err).Msg("Invalid JSON for generation request")
		utils.SendJSONError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return models.GenerationParams{}, false
	}
	if err := h.validator.Struct(body); err != nil {
		log.Warn().Err(err).Msg("Generation request failed validation")
		sendServiceError(w, err, "validating generation request")
		return models.GenerationParams{}, false
	}
	return body.Params(), true
}
