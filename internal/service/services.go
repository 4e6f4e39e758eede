package service

import (
	"github.com/avelarde/climatask/internal/config"
	"github.com/avelarde/climatask/internal/logger"
	"github.com/avelarde/climatask/internal/store"
	"github.com/avelarde/climatask/internal/weather"
)

// Services aggregates every application service. Constructed once at
// startup and injected into the HTTP handler.
type Services struct {
	UserService     UserService
	LocationService LocationService
	TaskService     TaskService
	WeatherService  WeatherService
	AuthService     AuthService
}

func NewServices(storages *store.Storages, weatherClient weather.Client, cfg *config.Config, logger *logger.Logger) *Services {
	return &Services{
		UserService:     NewUserService(storages.UserRepository, logger),
		LocationService: NewLocationService(storages.LocationRepository, logger),
		TaskService:     NewTaskService(storages.TaskRepository, logger),
		WeatherService:  NewWeatherService(weatherClient, cfg.Weather, logger),
		AuthService:     NewAuthService(cfg.Auth, logger),
	}
}
