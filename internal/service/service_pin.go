// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/pin-relay/internal/adapter"
	"github.com/MKhiriev/pin-relay/internal/config"
	"github.com/MKhiriev/pin-relay/models"
)

const emptyDocument = "{}"

type pinService struct {
	pinner adapter.Pinner

	credentials  models.Credentials
	gatewayURL   string
	metadataName string
}

// NewPinService constructs the relay's [PinService]. The credentials and
// gateway settings are captured once and never re-read.
func NewPinService(pinner adapter.Pinner, cfg config.Pinata) PinService {
	return &pinService{
		pinner:       pinner,
		credentials:  cfg.Credentials(),
		gatewayURL:   strings.TrimRight(cfg.GatewayURL, "/"),
		metadataName: cfg.MetadataName,
	}
}

// UploadFile pins file and returns its gateway URI.
//
// A missing file is reported before missing credentials, so a client sending
// an empty form always gets [ErrNoFileProvided].
func (s *pinService) UploadFile(ctx context.Context, file models.File) (models.PinResult, error) {
	if file.Content == nil {
		return models.PinResult{}, ErrNoFileProvided
	}
	if !s.credentials.Complete() {
		return models.PinResult{}, ErrPinningNotConfigured
	}

	resp, err := s.pinner.PinFile(ctx, file)
	if err != nil {
		return models.PinResult{}, fmt.Errorf("%w: pin file %q: %w", ErrUpstreamFailure, file.Name, err)
	}

	return s.result(resp.IpfsHash), nil
}

// UploadMetadata wraps document in the pinning envelope, pins it and returns
// its gateway URI. Credentials are checked before the document is looked at.
// An empty document is pinned as {}.
func (s *pinService) UploadMetadata(ctx context.Context, document json.RawMessage) (models.PinResult, error) {
	if !s.credentials.Complete() {
		return models.PinResult{}, ErrPinningNotConfigured
	}
	document, err := normalizeDocument(document)
	if err != nil {
		return models.PinResult{}, err
	}

	req := models.PinJSONRequest{
		Content:  document,
		Metadata: models.PinMetadata{Name: s.metadataName},
	}

	resp, err := s.pinner.PinJSON(ctx, req)
	if err != nil {
		return models.PinResult{}, fmt.Errorf("%w: pin metadata: %w", ErrUpstreamFailure, err)
	}

	return s.result(resp.IpfsHash), nil
}

// normalizeDocument accepts only a JSON object or array at the top level.
func normalizeDocument(document json.RawMessage) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(document)
	if len(trimmed) == 0 {
		return json.RawMessage(emptyDocument), nil
	}
	if trimmed[0] != '{' && trimmed[0] != '[' {
		return nil, ErrInvalidMetadata
	}
	if !json.Valid(trimmed) {
		return nil, ErrInvalidMetadata
	}

	return json.RawMessage(trimmed), nil
}

func (s *pinService) result(hash string) models.PinResult {
	return models.PinResult{
		Hash: hash,
		URI:  s.gatewayURL + "/" + hash,
	}
}
