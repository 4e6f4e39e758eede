package http

import (
	"encoding/json"
	"net/http"

	"github.com/avelarde/climatask/internal/logger"
	"github.com/avelarde/climatask/internal/utils"
	"github.com/avelarde/climatask/models"
)

func (h *Handler) createLocation(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.LocationService.Create(r.Context(), req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.services.LocationService.List(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, locations, http.StatusOK)
}

func (h *Handler) getLocation(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r, "id")
	if err != nil {
		http.Error(w, "invalid location id", http.StatusBadRequest)
		return
	}

	location, err := h.services.LocationService.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, location, http.StatusOK)
}

func (h *Handler) updateLocation(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromRequest(r, "id")
	if err != nil {
		http.Error(w, "invalid location id", http.StatusBadRequest)
		return
	}

	var req models.UpdateLocationRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.LocationService.Update(r.Context(), id, req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteLocation(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r, "id")
	if err != nil {
		http.Error(w, "invalid location id", http.StatusBadRequest)
		return
	}

	if _, err = h.services.LocationService.Delete(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]string{"message": "Location deleted"}, http.StatusOK)
}

func (h *Handler) listLocationsByUser(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r, "id")
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	locations, err := h.services.LocationService.ListByUser(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, locations, http.StatusOK)
}
