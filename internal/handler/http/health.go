package http

import (
	"net/http"

	"github.com/avelarde/climatask/internal/utils"
)

// health is the liveness probe.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"message": "API is running"}, http.StatusOK)
}
