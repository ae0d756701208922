package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/pin-relay/models"
)

//go:generate mockgen -destination=../mock/service_mock.go -package=mock . PinService,AppInfoService

// PinService relays client content to the pinning service and turns the
// returned content hash into a public gateway URI.
type PinService interface {
	UploadFile(ctx context.Context, file models.File) (models.PinResult, error)
	UploadMetadata(ctx context.Context, document json.RawMessage) (models.PinResult, error)
}

// AppInfoService reports liveness and build information.
type AppInfoService interface {
	Health(ctx context.Context) models.HealthResponse
}

// PinServiceWrapper defines middleware composition for PinService.
// Implementations wrap an existing PinService to add behavior such as logging.
type PinServiceWrapper interface {
	Wrap(PinService) PinService // returns a decorated PinService applying additional behavior
}
