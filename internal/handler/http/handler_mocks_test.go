package http

import (
	"context"

	"github.com/avelarde/climatask/internal/config"
	"github.com/avelarde/climatask/internal/logger"
	"github.com/avelarde/climatask/internal/service"
	"github.com/avelarde/climatask/models"
)

// ─────────────────────────────────────────────
// Mock: service.UserService
// ─────────────────────────────────────────────

type mockUserService struct {
	registerFn func(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	listFn     func(ctx context.Context) ([]models.User, error)
	getFn      func(ctx context.Context, id int64) (models.User, error)
	updateFn   func(ctx context.Context, id int64, req models.UpdateUserRequest) (models.User, error)
	deleteFn   func(ctx context.Context, id int64) (models.User, error)
	loginFn    func(ctx context.Context, req models.LoginRequest) (models.User, error)
}

func (m *mockUserService) Register(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, req)
	}
	return models.User{}, nil
}

func (m *mockUserService) List(ctx context.Context) ([]models.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockUserService) Get(ctx context.Context, id int64) (models.User, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.User{}, nil
}

func (m *mockUserService) Update(ctx context.Context, id int64, req models.UpdateUserRequest) (models.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, req)
	}
	return models.User{}, nil
}

func (m *mockUserService) Delete(ctx context.Context, id int64) (models.User, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return models.User{}, nil
}

func (m *mockUserService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, req)
	}
	return models.User{}, nil
}

// ─────────────────────────────────────────────
// Mock: service.LocationService
// ─────────────────────────────────────────────

type mockLocationService struct {
	createFn     func(ctx context.Context, req models.CreateLocationRequest) (models.Location, error)
	getFn        func(ctx context.Context, id int64) (models.Location, error)
	listFn       func(ctx context.Context) ([]models.Location, error)
	listByUserFn func(ctx context.Context, userID int64) ([]models.Location, error)
	updateFn     func(ctx context.Context, id int64, req models.UpdateLocationRequest) (models.Location, error)
	deleteFn     func(ctx context.Context, id int64) (models.Location, error)
}

func (m *mockLocationService) Create(ctx context.Context, req models.CreateLocationRequest) (models.Location, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return models.Location{}, nil
}

func (m *mockLocationService) Get(ctx context.Context, id int64) (models.Location, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Location{}, nil
}

func (m *mockLocationService) List(ctx context.Context) ([]models.Location, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockLocationService) ListByUser(ctx context.Context, userID int64) ([]models.Location, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockLocationService) Update(ctx context.Context, id int64, req models.UpdateLocationRequest) (models.Location, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, req)
	}
	return models.Location{}, nil
}

func (m *mockLocationService) Delete(ctx context.Context, id int64) (models.Location, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return models.Location{}, nil
}

// ─────────────────────────────────────────────
// Mock: service.TaskService
// ─────────────────────────────────────────────

type mockTaskService struct {
	createFn     func(ctx context.Context, req models.CreateTaskRequest) (models.Task, error)
	getFn        func(ctx context.Context, id int64) (models.Task, error)
	listFn       func(ctx context.Context) ([]models.Task, error)
	listByUserFn func(ctx context.Context, userID int64) ([]models.Task, error)
	updateFn     func(ctx context.Context, id int64, req models.UpdateTaskRequest) (models.Task, error)
	deleteFn     func(ctx context.Context, id int64) (models.Task, error)
}

func (m *mockTaskService) Create(ctx context.Context, req models.CreateTaskRequest) (models.Task, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return models.Task{}, nil
}

func (m *mockTaskService) Get(ctx context.Context, id int64) (models.Task, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Task{}, nil
}

func (m *mockTaskService) List(ctx context.Context) ([]models.Task, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockTaskService) ListByUser(ctx context.Context, userID int64) ([]models.Task, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockTaskService) Update(ctx context.Context, id int64, req models.UpdateTaskRequest) (models.Task, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, req)
	}
	return models.Task{}, nil
}

func (m *mockTaskService) Delete(ctx context.Context, id int64) (models.Task, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return models.Task{}, nil
}

// ─────────────────────────────────────────────
// Mock: service.WeatherService
// ─────────────────────────────────────────────

type mockWeatherService struct {
	reportFn func(ctx context.Context, latitude, longitude, apiKey string) (models.WeatherReport, error)
}

func (m *mockWeatherService) Report(ctx context.Context, latitude, longitude, apiKey string) (models.WeatherReport, error) {
	if m.reportFn != nil {
		return m.reportFn(ctx, latitude, longitude, apiKey)
	}
	return models.WeatherReport{}, nil
}

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	createTokenFn func(ctx context.Context, user models.User) (string, error)
	verifyTokenFn func(signedToken string) (*service.Claims, error)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (string, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return "", nil
}

func (m *mockAuthService) VerifyToken(signedToken string) (*service.Claims, error) {
	if m.verifyTokenFn != nil {
		return m.verifyTokenFn(signedToken)
	}
	return nil, service.ErrTokenIsExpiredOrInvalid
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestServices() *service.Services {
	return &service.Services{
		UserService:     &mockUserService{},
		LocationService: &mockLocationService{},
		TaskService:     &mockTaskService{},
		WeatherService:  &mockWeatherService{},
		AuthService:     &mockAuthService{},
	}
}

func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services, config.Auth{}, logger.Nop())
}
