package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/avelarde/climatask/internal/service"
	"github.com/avelarde/climatask/internal/store"
	"github.com/avelarde/climatask/models"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

// ─────────────────────────────────────────────
// POST /locations
// ─────────────────────────────────────────────

func TestCreateLocation_Returns201(t *testing.T) {
	svcs := newTestServices()
	svcs.LocationService = &mockLocationService{
		createFn: func(_ context.Context, req models.CreateLocationRequest) (models.Location, error) {
			return models.Location{
				ID:        1,
				UserID:    req.UserID,
				Latitude:  *req.Latitude,
				Longitude: *req.Longitude,
				Name:      req.Name,
			}, nil
		},
	}
	h := newTestHandler(svcs)

	lat, lon := 52.52, 13.405
	rec := doRequest(t, h, http.MethodPost, "/locations", models.CreateLocationRequest{
		UserID:    5,
		Latitude:  &lat,
		Longitude: &lon,
		Name:      "Berlin",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{
		"id":1,"userId":5,"latitude":52.52,"longitude":13.405,
		"name":"Berlin","description":null,"elevation":null,"timezone":null
	}`, rec.Body.String())
}

func TestCreateLocation_MissingRequiredField(t *testing.T) {
	svcs := newTestServices()
	svcs.LocationService = &mockLocationService{
		createFn: func(_ context.Context, _ models.CreateLocationRequest) (models.Location, error) {
			return models.Location{}, service.ErrInvalidDataProvided
		},
	}
	h := newTestHandler(svcs)

	rec := doRequest(t, h, http.MethodPost, "/locations", models.CreateLocationRequest{Name: "no coords"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateLocation_UnknownUserIsServerError(t *testing.T) {
	svcs := newTestServices()
	svcs.LocationService = &mockLocationService{
		createFn: func(_ context.Context, _ models.CreateLocationRequest) (models.Location, error) {
			return models.Location{}, store.ErrUserReferenceNotFound
		},
	}
	h := newTestHandler(svcs)

	lat, lon := 1.0, 1.0
	rec := doRequest(t, h, http.MethodPost, "/locations", models.CreateLocationRequest{
		UserID: 42, Latitude: &lat, Longitude: &lon, Name: "Nowhere",
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// GET /locations/{id}, GET /users/{id}/locations
// ─────────────────────────────────────────────

func TestGetLocation_EmbedsOwner(t *testing.T) {
	svcs := newTestServices()
	svcs.LocationService = &mockLocationService{
		getFn: func(_ context.Context, id int64) (models.Location, error) {
			return models.Location{
				ID: id, UserID: 5, Latitude: 52.52, Longitude: 13.405, Name: "Berlin",
				User: &models.UserResponse{ID: 5, Email: "john@example.com", Name: "John"},
			}, nil
		},
	}
	h := newTestHandler(svcs)

	rec := doRequest(t, h, http.MethodGet, "/locations/1", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"id":1,"userId":5,"latitude":52.52,"longitude":13.405,
		"name":"Berlin","description":null,"elevation":null,"timezone":null,
		"user":{"id":5,"email":"john@example.com","name":"John"}
	}`, rec.Body.String())
}

func TestGetLocation_NotFound(t *testing.T) {
	svcs := newTestServices()
	svcs.LocationService = &mockLocationService{
		getFn: func(_ context.Context, _ int64) (models.Location, error) {
			return models.Location{}, store.ErrLocationNotFound
		},
	}
	h := newTestHandler(svcs)

	rec := doRequest(t, h, http.MethodGet, "/locations/42", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListLocationsByUser_UnknownUserYieldsEmptyList(t *testing.T) {
	svcs := newTestServices()
	svcs.LocationService = &mockLocationService{
		listByUserFn: func(_ context.Context, _ int64) ([]models.Location, error) {
			return []models.Location{}, nil
		},
	}
	h := newTestHandler(svcs)

	rec := doRequest(t, h, http.MethodGet, "/users/42/locations", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

// ─────────────────────────────────────────────
// PUT /locations/{id}, DELETE /locations/{id}
// ─────────────────────────────────────────────

func TestUpdateLocation_PassesSuppliedFields(t *testing.T) {
	var received models.UpdateLocationRequest
	svcs := newTestServices()
	svcs.LocationService = &mockLocationService{
		updateFn: func(_ context.Context, id int64, req models.UpdateLocationRequest) (models.Location, error) {
			received = req
			return models.Location{ID: id, Name: *req.Name}, nil
		},
	}
	h := newTestHandler(svcs)

	rec := doRequest(t, h, http.MethodPut, "/locations/1", models.UpdateLocationRequest{
		Name: strPtr("Berlin Mitte"),
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, received.Latitude)
	assert.Nil(t, received.Longitude)
}

func TestDeleteLocation_Message(t *testing.T) {
	svcs := newTestServices()
	svcs.LocationService = &mockLocationService{
		deleteFn: func(_ context.Context, id int64) (models.Location, error) {
			return models.Location{ID: id}, nil
		},
	}
	h := newTestHandler(svcs)

	rec := doRequest(t, h, http.MethodDelete, "/locations/1", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Location deleted"}`, rec.Body.String())
}

func TestDeleteLocation_NotFound(t *testing.T) {
	svcs := newTestServices()
	svcs.LocationService = &mockLocationService{
		deleteFn: func(_ context.Context, _ int64) (models.Location, error) {
			return models.Location{}, store.ErrLocationNotFound
		},
	}
	h := newTestHandler(svcs)

	rec := doRequest(t, h, http.MethodDelete, "/locations/42", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
