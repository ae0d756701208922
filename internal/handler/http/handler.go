package http

import (
	"github.com/MKhiriev/pin-relay/internal/logger"
	"github.com/MKhiriev/pin-relay/internal/service"
)

// multipartMemory is how much of a multipart body is kept in memory; the rest
// is spooled to temporary files that are removed when the request ends.
const multipartMemory = 32 << 20

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
