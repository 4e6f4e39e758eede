package http

import (
	"context"
	"net/http"

	"github.com/avelarde/climatask/internal/logger"
	"github.com/avelarde/climatask/internal/service"
	"github.com/avelarde/climatask/internal/utils"
)

// auth enforces JWT bearer authentication on the persistence routes. It is
// only installed when auth is enabled in the configuration.
//
// On success the authenticated user's id is stored in the request context
// under [utils.UserIDCtxKey]. Missing, malformed, expired, or otherwise
// invalid tokens are rejected with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := service.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(ErrInvalidAuthorizationHeader).Send()
			http.Error(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		claims, err := h.services.AuthService.VerifyToken(tokenString)
		if err != nil {
			log.Err(err).Msg("token verification failed")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
