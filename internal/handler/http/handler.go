// Package http implements the HTTP transport layer of the climatask
// service: route registration, request handlers, middleware, and the
// error-to-status mapping shared by every handler.
package http

import (
	"github.com/avelarde/climatask/internal/config"
	"github.com/avelarde/climatask/internal/logger"
	"github.com/avelarde/climatask/internal/service"
)

type Handler struct {
	services *service.Services
	authCfg  config.Auth

	logger *logger.Logger
}

func NewHandler(services *service.Services, authCfg config.Auth, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		authCfg:  authCfg,
		logger:   logger,
	}
}
