package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/avelarde/climatask/internal/logger"
	"github.com/avelarde/climatask/internal/store"
	"github.com/avelarde/climatask/internal/utils"
	"github.com/avelarde/climatask/models"
)

type deleteUserResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.UserService.Register(ctx, req)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Err(err).Str("email", req.Email).Msg("user already exists")
			utils.WriteJSON(w, map[string]string{"message": "User already exists"}, http.StatusBadRequest)
			return
		}
		h.respondError(w, r, err)
		return
	}

	h.setBearerToken(w, r, created)
	utils.WriteJSON(w, created.Public(), http.StatusCreated)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.List(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	projected := make([]models.UserResponse, 0, len(users))
	for _, user := range users {
		projected = append(projected, user.Public())
	}

	utils.WriteJSON(w, projected, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r, "id")
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	// the Password field carries json:"-", so the full record is safe to
	// serialize as is
	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromRequest(r, "id")
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	var req models.UpdateUserRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.UserService.Update(r.Context(), id, req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated.Public(), http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r, "id")
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	deleted, err := h.services.UserService.Delete(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, deleteUserResponse{
		Message: "deleted user.",
		ID:      deleted.ID,
		Email:   deleted.Email,
		Name:    deleted.Name,
	}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.Login(ctx, req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Debug().Int64("id", user.ID).Msg("user successfully logged in")

	h.setBearerToken(w, r, user)
	utils.WriteJSON(w, user.Public(), http.StatusOK)
}

// setBearerToken attaches a signed token to the response when auth is
// enabled; with auth disabled it is a no-op.
func (h *Handler) setBearerToken(w http.ResponseWriter, r *http.Request, user models.User) {
	if !h.authCfg.Enabled {
		return
	}

	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("creation of token failed")
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token))
}
