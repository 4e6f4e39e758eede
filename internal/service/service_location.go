package service

import (
	"context"

	"github.com/avelarde/climatask/internal/logger"
	"github.com/avelarde/climatask/internal/store"
	"github.com/avelarde/climatask/models"
)

// locationService is the concrete implementation of [LocationService].
type locationService struct {
	locationRepository store.LocationRepository
	logger             *logger.Logger
}

// NewLocationService constructs a [LocationService] wired to the given
// repository.
func NewLocationService(locationRepository store.LocationRepository, logger *logger.Logger) LocationService {
	return &locationService{
		locationRepository: locationRepository,
		logger:             logger,
	}
}

// Create persists a new location. UserID, latitude, longitude, and name are
// required; description, elevation, and timezone are optional. A userId that
// references no account surfaces as store.ErrUserReferenceNotFound from the
// repository.
func (s *locationService) Create(ctx context.Context, req models.CreateLocationRequest) (models.Location, error) {
	log := logger.FromContext(ctx)

	if req.UserID == 0 || req.Latitude == nil || req.Longitude == nil || req.Name == "" {
		log.Error().Any("request", req).Msg("invalid location data provided")
		return models.Location{}, ErrInvalidDataProvided
	}

	return s.locationRepository.CreateLocation(ctx, models.Location{
		UserID:      req.UserID,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		Name:        req.Name,
		Description: req.Description,
		Elevation:   req.Elevation,
		Timezone:    req.Timezone,
	})
}

// Get returns the location with the owning user embedded, or
// store.ErrLocationNotFound.
func (s *locationService) Get(ctx context.Context, id int64) (models.Location, error) {
	return s.locationRepository.GetLocationByID(ctx, id)
}

// List returns all locations with their owners embedded.
func (s *locationService) List(ctx context.Context) ([]models.Location, error) {
	return s.locationRepository.ListLocations(ctx)
}

// ListByUser returns the locations owned by the given user.
func (s *locationService) ListByUser(ctx context.Context, userID int64) ([]models.Location, error) {
	return s.locationRepository.ListLocationsByUser(ctx, userID)
}

// Update applies a partial update over the whitelisted location fields.
func (s *locationService) Update(ctx context.Context, id int64, req models.UpdateLocationRequest) (models.Location, error) {
	return s.locationRepository.UpdateLocation(ctx, id, store.LocationUpdate{
		UserID:      req.UserID,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Name:        req.Name,
		Description: req.Description,
		Elevation:   req.Elevation,
		Timezone:    req.Timezone,
	})
}

// Delete removes the location and returns the deleted record, or
// store.ErrLocationNotFound.
func (s *locationService) Delete(ctx context.Context, id int64) (models.Location, error) {
	return s.locationRepository.DeleteLocation(ctx, id)
}
