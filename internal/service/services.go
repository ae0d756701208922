package service

import (
	"github.com/MKhiriev/pin-relay/internal/adapter"
	"github.com/MKhiriev/pin-relay/internal/config"
	"github.com/MKhiriev/pin-relay/internal/logger"
	"github.com/MKhiriev/pin-relay/models"
)

type Services struct {
	PinService     PinService
	AppInfoService AppInfoService
}

func NewServices(pinner adapter.Pinner, cfg config.Pinata, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	if !cfg.Credentials().Complete() {
		logger.Warn().Msg("pinata API keys are not configured, uploads will fail until they are set")
	}

	return &Services{
		PinService:     NewPinLoggingService(logger).Wrap(NewPinService(pinner, cfg)),
		AppInfoService: NewAppInfoService(buildInfo),
	}
}
