package http

import (
	"net/http"

	"github.com/shahparag-spring2021/webapp/models"
)

// health is a liveness probe: it touches no dependency and always succeeds.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, models.HealthResponse{Success: true}, http.StatusOK)
}
