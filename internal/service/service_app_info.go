package service

import (
	"context"
	"time"

	"github.com/MKhiriev/pin-relay/models"
)

const statusOK = "ok"

type appInfoService struct {
	buildInfo models.AppBuildInfo
	now       func() time.Time
}

func NewAppInfoService(buildInfo models.AppBuildInfo) AppInfoService {
	return &appInfoService{
		buildInfo: buildInfo,
		now:       time.Now,
	}
}

// Health always reports "ok": the relay holds no state that could make it
// unhealthy. The version is included only when it was set at build time.
func (s *appInfoService) Health(ctx context.Context) models.HealthResponse {
	resp := models.HealthResponse{
		Status:    statusOK,
		Timestamp: s.now().UTC().Format(time.RFC3339),
	}
	if s.buildInfo.Known() {
		resp.Version = s.buildInfo.BuildVersion()
	}

	return resp
}
