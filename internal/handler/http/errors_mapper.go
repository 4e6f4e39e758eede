package http

import (
	"errors"
	"net/http"

	"github.com/avelarde/climatask/internal/logger"
	"github.com/avelarde/climatask/internal/service"
	"github.com/avelarde/climatask/internal/store"
	"github.com/avelarde/climatask/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusBadRequest,
	service.ErrInvalidAPIKey:           http.StatusUnauthorized,
	service.ErrNoForecastData:          http.StatusNotFound,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrEmailAlreadyExists:    http.StatusBadRequest,
	store.ErrUserNotFound:          http.StatusNotFound,
	store.ErrLocationNotFound:      http.StatusNotFound,
	store.ErrTaskNotFound:          http.StatusNotFound,
	store.ErrUserReferenceNotFound: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError writes the single JSON error response for err. Client errors
// carry the sentinel's message; unexpected failures answer with a generic
// message and only the server-side log sees the cause.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	message := "Internal server error"
	if status != http.StatusInternalServerError {
		for target := range errorStatusMap {
			if errors.Is(err, target) {
				message = target.Error()
				break
			}
		}
	}

	log.Err(err).Int("status", status).Msg("request failed")
	utils.WriteJSON(w, map[string]string{"error": message}, status)
}
