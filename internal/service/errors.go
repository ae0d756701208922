package service

import "errors"

var (
	ErrNoFileProvided       = errors.New("no file provided")
	ErrPinningNotConfigured = errors.New("pinning service credentials are not configured")
	ErrInvalidMetadata      = errors.New("metadata is not a valid JSON document")
	ErrUpstreamFailure      = errors.New("pinning service call failed")
)
