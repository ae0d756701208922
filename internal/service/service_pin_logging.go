package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/MKhiriev/pin-relay/internal/logger"
	"github.com/MKhiriev/pin-relay/models"
	"github.com/rs/zerolog"
)

// PinLoggingService records the outcome of every relay operation. Expected
// client-side failures are logged at warn level, upstream failures at error
// level with the full cause.
type PinLoggingService struct {
	inner  PinService
	logger *logger.Logger
}

func NewPinLoggingService(logger *logger.Logger) PinServiceWrapper {
	return &PinLoggingService{logger: logger}
}

func (l *PinLoggingService) Wrap(inner PinService) PinService {
	l.inner = inner
	return l
}

func (l *PinLoggingService) UploadFile(ctx context.Context, file models.File) (models.PinResult, error) {
	start := time.Now()
	result, err := l.inner.UploadFile(ctx, file)

	event := l.event(ctx, err).
		Str("operation", "upload_file").
		Str("file_name", file.Name).
		Str("content_type", file.ContentType).
		Int64("size", file.Size).
		Dur("duration", time.Since(start))
	if err != nil {
		event.Err(err).Msg("file upload failed")
		return result, err
	}

	event.Str("hash", result.Hash).Msg("file pinned")
	return result, nil
}

func (l *PinLoggingService) UploadMetadata(ctx context.Context, document json.RawMessage) (models.PinResult, error) {
	start := time.Now()
	result, err := l.inner.UploadMetadata(ctx, document)

	event := l.event(ctx, err).
		Str("operation", "upload_metadata").
		Int("size", len(document)).
		Dur("duration", time.Since(start))
	if err != nil {
		event.Err(err).Msg("metadata upload failed")
		return result, err
	}

	event.Str("hash", result.Hash).Msg("metadata pinned")
	return result, nil
}

func (l *PinLoggingService) event(ctx context.Context, err error) *zerolog.Event {
	log := logger.FromContextOr(ctx, l.logger)

	switch {
	case err == nil:
		return log.Info()
	case errors.Is(err, ErrUpstreamFailure), errors.Is(err, ErrPinningNotConfigured):
		return log.Error()
	default:
		return log.Warn()
	}
}
