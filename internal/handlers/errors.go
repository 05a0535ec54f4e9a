package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"appideas/internal/models"
	"appideas/internal/utils"
	"appideas/internal/validation"
)

// sendServiceError maps service errors to HTTP responses.
func sendServiceError(w http.ResponseWriter, err error, action string) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		utils.SendJSONErrorWithFields(w, "Validation failed", verr.FieldMap(), http.StatusBadRequest)
	case errors.Is(err, models.ErrIdeaNotFound):
		utils.SendJSONError(w, "Idea not found", http.StatusNotFound)
	case errors.Is(err, models.ErrNoUpdateFields),
		errors.Is(err, models.ErrInvalidSort),
		errors.Is(err, models.ErrInvalidPage),
		errors.Is(err, models.ErrInvalidInput):
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
	default:
		log.Error().Err(err).Msgf("Error %s", action)
		utils.SendJSONError(w, "Internal server error", http.StatusInternalServerError)
	}
}
