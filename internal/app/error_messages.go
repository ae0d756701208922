// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the client-facing message strings of the relay.
//
// Every failed request carries one of these in its {"error": ...} body.
// Upstream error details are never part of a client message.
package app

const (
	// MsgNoFileProvided is returned when an image upload has no "file" field.
	MsgNoFileProvided = "No file provided"

	// MsgKeysNotConfigured is returned when the pinning credentials are
	// missing from the process configuration.
	MsgKeysNotConfigured = "Pinata API keys not configured"

	// MsgInvalidJSONBody is returned when a metadata upload body is not a
	// JSON document.
	MsgInvalidJSONBody = "Invalid JSON body"

	MsgFailedUploadImage    = "Failed to upload image"
	MsgFailedUploadMetadata = "Failed to upload metadata"
)
