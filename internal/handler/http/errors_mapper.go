package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/pin-relay/internal/app"
	"github.com/MKhiriev/pin-relay/internal/service"
)

type errorResponse struct {
	status  int
	message string
}

var errorResponseMap = map[error]errorResponse{
	service.ErrNoFileProvided:       {status: http.StatusBadRequest, message: app.MsgNoFileProvided},
	service.ErrInvalidMetadata:      {status: http.StatusBadRequest, message: app.MsgInvalidJSONBody},
	service.ErrPinningNotConfigured: {status: http.StatusInternalServerError, message: app.MsgKeysNotConfigured},
}

// responseFromError picks the client-facing status and message for err.
// Anything not listed, upstream failures included, becomes a 500 with the
// endpoint's generic fallback message.
func responseFromError(err error, fallback string) errorResponse {
	for target, resp := range errorResponseMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return errorResponse{status: http.StatusInternalServerError, message: fallback}
}
