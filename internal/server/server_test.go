package server

import (
	"testing"

	"github.com/avelarde/climatask/internal/config"
	handlerhttp "github.com/avelarde/climatask/internal/handler/http"
	"github.com/avelarde/climatask/internal/logger"
	"github.com/avelarde/climatask/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *handlerhttp.Handler {
	return handlerhttp.NewHandler(&service.Services{}, config.Auth{}, logger.Nop())
}

func TestNewServer_Success(t *testing.T) {
	srv, err := NewServer(newTestHandler(), config.Server{Address: ":0"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, srv)
}

func TestNewServer_NoAddress(t *testing.T) {
	srv, err := NewServer(newTestHandler(), config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoAddressConfigured)
	assert.Nil(t, srv)
}
