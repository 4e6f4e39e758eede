package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avelarde/climatask/internal/logger"
	"github.com/avelarde/climatask/internal/store"
	"github.com/avelarde/climatask/models"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost mirrors the 10-round cost factor the service has always used
// for password hashes.
const bcryptCost = 10

// userService is the concrete implementation of [UserService]. Passwords are
// hashed with bcrypt before they reach the repository and compared with
// bcrypt's constant-time comparison on login.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a [UserService] wired to the given repository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Register creates a new account. The email is checked for uniqueness before
// the insert so a duplicate signup fails without touching the existing
// record; the unique index backs this up against races.
//
// Returns ErrInvalidDataProvided when email or password is empty, and
// store.ErrEmailAlreadyExists when the email is taken.
func (s *userService) Register(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return models.User{}, store.ErrEmailAlreadyExists
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("checking email uniqueness: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		log.Err(err).Msg("hashing password failed")
		return models.User{}, fmt.Errorf("hashing password: %w", err)
	}

	created, err := s.userRepository.CreateUser(ctx, models.User{
		Email:    req.Email,
		Name:     req.Name,
		Password: string(hash),
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// List returns all accounts. Handlers project each record before responding.
func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.userRepository.ListUsers(ctx)
}

// Get returns the account with the given id, or store.ErrUserNotFound.
func (s *userService) Get(ctx context.Context, id int64) (models.User, error) {
	return s.userRepository.GetUserByID(ctx, id)
}

// Update applies a partial update. Omitted fields keep their stored values;
// a supplied password is rehashed before storage.
func (s *userService) Update(ctx context.Context, id int64, req models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	upd := store.UserUpdate{
		Email: req.Email,
		Name:  req.Name,
	}

	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcryptCost)
		if err != nil {
			log.Err(err).Msg("hashing password failed")
			return models.User{}, fmt.Errorf("hashing password: %w", err)
		}
		hashed := string(hash)
		upd.Password = &hashed
	}

	return s.userRepository.UpdateUser(ctx, id, upd)
}

// Delete looks the account up first and stops with store.ErrUserNotFound
// when it is absent, so no delete is issued against the store for unknown
// ids. On success the deleted record is returned.
func (s *userService) Delete(ctx context.Context, id int64) (models.User, error) {
	if _, err := s.userRepository.GetUserByID(ctx, id); err != nil {
		return models.User{}, err
	}

	return s.userRepository.DeleteUser(ctx, id)
}

// Login authenticates by email and password.
//
// Returns store.ErrUserNotFound for an unknown email and ErrWrongPassword
// when the bcrypt comparison fails.
func (s *userService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		log.Error().Int64("id", user.ID).Str("email", user.Email).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return user, nil
}
