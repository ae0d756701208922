// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound side of the relay: the client of the
// third-party pinning service.
//
// The primary abstraction is [Pinner], which decouples the service layer
// from the pinning provider. The package ships a Pinata implementation
// ([NewPinataAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from upstream HTTP status
// codes by mapHTTPError so that callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/pin-relay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/pinner_mock.go -package=mock

// Pinner pins content on the pinning service and returns the service reply.
// Each method issues exactly one upstream request and never retries.
type Pinner interface {
	// PinFile uploads file as a multipart form under the field "file",
	// keeping its original name and content type.
	PinFile(ctx context.Context, file models.File) (models.PinataResponse, error)

	// PinJSON uploads an enveloped JSON document.
	PinJSON(ctx context.Context, req models.PinJSONRequest) (models.PinataResponse, error)
}
