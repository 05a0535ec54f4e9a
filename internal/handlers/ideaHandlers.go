package handlers

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"appideas/internal/models"
	"appideas/internal/services"
	"appideas/internal/utils"
	"appideas/internal/validation"
)

type IdeaHandler struct {
	service   services.IdeaService
	validator *validation.Validator
}

func NewIdeaHandler(service services.IdeaService, validator *validation.Validator) *IdeaHandler {
	return &IdeaHandler{service: service, validator: validator}
}

func (h *IdeaHandler) GetIdeas(w http.ResponseWriter, r *http.Request) {
	query, ok := parseListQuery(w, r)
	if !ok {
		return
	}

	page, err := h.service.GetIdeas(r.Context(), query)
	if err != nil {
		sendServiceError(w, err, "listing ideas")
		return
	}
	respondWithPage(w, page)
}

func (h *IdeaHandler) GetSavedIdeas(w http.ResponseWriter, r *http.Request) {
	query, ok := parseListQuery(w, r)
	if !ok {
		return
	}

	page, err := h.service.GetSavedIdeas(r.Context(), query)
	if err != nil {
		sendServiceError(w, err, "listing saved ideas")
		return
	}
	respondWithPage(w, page)
}

func (h *IdeaHandler) GetIdeaByID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.GetIntIDFromVars(w, r, "id")
	if err != nil {
		return
	}

	idea, err := h.service.GetIdeaByID(r.Context(), id)
	if err != nil {
		sendServiceError(w, err, "retrieving idea")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, idea)
}

func (h *IdeaHandler) AddIdea(w http.ResponseWriter, r *http.Request) {
	var body models.AddIdeaRequestBody
	if err := utils.DecodeJSONBody(r, &body, false); err != nil {
		log.Warn().Err(err).Msg("Invalid JSON for AddIdea")
		utils.SendJSONError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validator.Struct(body); err != nil {
		sendServiceError(w, err, "validating idea")
		return
	}

	idea, err := h.service.AddIdea(r.Context(), body.Idea())
	if err != nil {
		sendServiceError(w, err, "adding idea")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, idea)
}

func (h *IdeaHandler) UpdateIdea(w http.ResponseWriter, r *http.Request) {
	id, err := utils.GetIntIDFromVars(w, r, "id")
	if err != nil {
		return
	}

	var update models.IdeaUpdate
	if err := utils.DecodeJSONBody(r, &update, false); err != nil {
		log.Warn().Err(err).Int64("idea_id", id).Msg("Invalid JSON for UpdateIdea")
		utils.SendJSONError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validator.Struct(update); err != nil {
		sendServiceError(w, err, "validating idea update")
		return
	}

	idea, err := h.service.UpdateIdea(r.Context(), id, update)
	if err != nil {
		sendServiceError(w, err, "updating idea")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, idea)
}

func (h *IdeaHandler) ToggleSaved(w http.ResponseWriter, r *http.Request) {
	id, err := utils.GetIntIDFromVars(w, r, "id")
	if err != nil {
		return
	}

	idea, err := h.service.ToggleSaved(r.Context(), id)
	if err != nil {
		sendServiceError(w, err, "toggling saved state")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, idea)
}

func (h *IdeaHandler) CopyIdea(w http.ResponseWriter, r *http.Request) {
	id, err := utils.GetIntIDFromVars(w, r, "id")
	if err != nil {
		return
	}

	text, err := h.service.ClipboardText(r.Context(), id)
	if err != nil {
		sendServiceError(w, err, "formatting clipboard text")
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}

func (h *IdeaHandler) DeleteIdea(w http.ResponseWriter, r *http.Request) {
	id, err := utils.GetIntIDFromVars(w, r, "id")
	if err != nil {
		return
	}

	if err := h.service.DeleteIdea(r.Context(), id); err != nil {
		sendServiceError(w, err, "deleting idea")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseListQuery(w http.ResponseWriter, r *http.Request) (services.ListQuery, bool) {
	q := r.URL.Query()
	query := services.ListQuery{Sort: services.SortOrder(q.Get("sort"))}

	for name, dst := range map[string]*int{"page": &query.Page, "limit": &query.Limit} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			utils.SendJSONError(w, "Invalid "+name+" parameter", http.StatusBadRequest)
			return query, false
		}
		*dst = n
	}
	return query, true
}

func respondWithPage(w http.ResponseWriter, page *models.IdeaPage) {
	w.Header().Set("X-Total-Count", strconv.Itoa(page.Total))
	w.Header().Set("X-Total-Pages", strconv.Itoa(page.TotalPages))
	utils.RespondWithJSON(w, http.StatusOK, page.Items)
}
