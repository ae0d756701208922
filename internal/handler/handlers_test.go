package handler

import (
	"testing"

	"github.com/MKhiriev/pin-relay/internal/config"
	"github.com/MKhiriev/pin-relay/internal/logger"
	"github.com/MKhiriev/pin-relay/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers_WithAddress(t *testing.T) {
	cfg := config.Server{HTTPAddress: "localhost:3001"}

	h, err := NewHandlers(&service.Services{}, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
	assert.NotNil(t, h.HTTP.Init())
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}
