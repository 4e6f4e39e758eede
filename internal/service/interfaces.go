package service

import (
	"context"

	"github.com/avelarde/climatask/models"
)

// UserService owns account lifecycle and authentication.
type UserService interface {
	Register(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id int64) (models.User, error)
	Update(ctx context.Context, id int64, req models.UpdateUserRequest) (models.User, error)
	Delete(ctx context.Context, id int64) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
}

// LocationService owns location CRUD.
type LocationService interface {
	Create(ctx context.Context, req models.CreateLocationRequest) (models.Location, error)
	Get(ctx context.Context, id int64) (models.Location, error)
	List(ctx context.Context) ([]models.Location, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Location, error)
	Update(ctx context.Context, id int64, req models.UpdateLocationRequest) (models.Location, error)
	Delete(ctx context.Context, id int64) (models.Location, error)
}

// TaskService owns task CRUD.
type TaskService interface {
	Create(ctx context.Context, req models.CreateTaskRequest) (models.Task, error)
	Get(ctx context.Context, id int64) (models.Task, error)
	List(ctx context.Context) ([]models.Task, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Task, error)
	Update(ctx context.Context, id int64, req models.UpdateTaskRequest) (models.Task, error)
	Delete(ctx context.Context, id int64) (models.Task, error)
}

// WeatherService validates the shared secret and produces the reshaped
// forecast report.
type WeatherService interface {
	Report(ctx context.Context, latitude, longitude, apiKey string) (models.WeatherReport, error)
}

// AuthService issues and verifies bearer tokens for the optional
// authentication middleware.
type AuthService interface {
	CreateToken(ctx context.Context, user models.User) (string, error)
	VerifyToken(signedToken string) (*Claims, error)
}
