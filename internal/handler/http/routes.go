package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// open routes
	router.Group(func(r chi.Router) {
		r.Get("/", h.health)
		r.Get("/climate", h.climate)
		r.Post("/users", h.createUser)
		r.Post("/login", h.login)
	})

	// persistence routes, guarded by the bearer middleware when auth is
	// enabled in the configuration
	router.Group(func(r chi.Router) {
		if h.authCfg.Enabled {
			r.Use(h.auth)
		}

		r.Get("/users", h.listUsers)
		r.Get("/users/{id}", h.getUser)
		r.Put("/users/{id}", h.updateUser)
		r.Delete("/users/{id}", h.deleteUser)
		r.Get("/users/{id}/locations", h.listLocationsByUser)

		r.Post("/locations", h.createLocation)
		r.Get("/locations", h.listLocations)
		r.Get("/locations/{id}", h.getLocation)
		r.Put("/locations/{id}", h.updateLocation)
		r.Delete("/locations/{id}", h.deleteLocation)

		r.Post("/tasks", h.createTask)
		r.Get("/tasks", h.listTasks)
		r.Get("/tasks/user/{userId}", h.listTasksByUser)
		r.Get("/tasks/{id}", h.getTask)
		r.Put("/tasks/{id}", h.updateTask)
		r.Delete("/tasks/{id}", h.deleteTask)
	})

	return router
}
