package http

import (
	"net/http"

	"github.com/avelarde/climatask/internal/utils"
	"github.com/avelarde/climatask/models"
)

type climateResponse struct {
	Data models.WeatherReport `json:"data"`
}

// climate is the forecast passthrough. The shared-secret check, the upstream
// call, and the reshaping all live in the weather service; this handler only
// binds query parameters and maps errors to statuses (401 bad key, 404 no
// data, 500 otherwise).
func (h *Handler) climate(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	latitude := query.Get("latitude")
	longitude := query.Get("longitude")
	apiKey := query.Get("apikey")

	report, err := h.services.WeatherService.Report(r.Context(), latitude, longitude, apiKey)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, climateResponse{Data: report}, http.StatusOK)
}
