package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/pin-relay/internal/config"
	"github.com/MKhiriev/pin-relay/internal/logger"
	"github.com/MKhiriev/pin-relay/internal/mock"
	"github.com/MKhiriev/pin-relay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHealth_AlwaysOK(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("", "", ""))

	for i := 0; i < 3; i++ {
		assert.Equal(t, "ok", svc.Health(context.Background()).Status)
	}
}

func TestHealth_Timestamp(t *testing.T) {
	fixed := time.Date(2026, 10, 16, 12, 30, 0, 0, time.FixedZone("X", 3*3600))
	svc := &appInfoService{now: func() time.Time { return fixed }}

	got := svc.Health(context.Background())

	assert.Equal(t, "2026-10-16T09:30:00Z", got.Timestamp)
}

func TestHealth_VersionOnlyWhenKnown(t *testing.T) {
	unknown := NewAppInfoService(models.NewAppBuildInfo("", "", ""))
	known := NewAppInfoService(models.NewAppBuildInfo("1.4.0", "", ""))

	assert.Empty(t, unknown.Health(context.Background()).Version)
	assert.Equal(t, "1.4.0", known.Health(context.Background()).Version)
}

func TestHealth_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := NewAppInfoService(models.NewAppBuildInfo("", "", "")).Health(ctx)

	assert.Equal(t, "ok", got.Status)
}

func TestNewServices_WiresLoggingWrapper(t *testing.T) {
	ctrl := gomock.NewController(t)
	pinner := mock.NewMockPinner(ctrl)

	svcs := NewServices(pinner, config.Pinata{}, models.NewAppBuildInfo("", "", ""), logger.Nop())

	require.NotNil(t, svcs.PinService)
	require.NotNil(t, svcs.AppInfoService)
	assert.IsType(t, &PinLoggingService{}, svcs.PinService)
}
