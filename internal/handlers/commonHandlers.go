package handlers

import (
	"net/http"

	"appideas/internal/utils"
)

// HealthChecker reports the state of the storage backend.
type HealthChecker interface {
	Health() map[string]string
}

type CommonHandler struct {
	health HealthChecker
}

func NewCommonHandler(health HealthChecker) *CommonHandler {
	return &CommonHandler{health: health}
}

func (h *CommonHandler) RootHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "App Idea Generator API"})
}

func (h *CommonHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	stats := h.health.Health()
	status := http.StatusOK
	if _, failed := stats["error"]; failed {
		status = http.StatusServiceUnavailable
	}
	utils.RespondWithJSON(w, status, stats)
}
