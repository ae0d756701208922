// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// PinataResponse is the body returned by the pinning endpoints on success.
type PinataResponse struct {
	// IpfsHash is the content identifier (CID) of the pinned content.
	IpfsHash string `json:"IpfsHash"`

	// PinSize is the size of the pinned content in bytes.
	PinSize int64 `json:"PinSize"`

	// Timestamp is the time the content was pinned, as sent by the service.
	Timestamp string `json:"Timestamp"`

	// IsDuplicate is set when the same content had already been pinned.
	IsDuplicate bool `json:"isDuplicate,omitempty"`
}

// PinMetadata carries the descriptive name attached to a pin.
type PinMetadata struct {
	Name string `json:"name"`
}

// PinJSONRequest is the envelope sent to the JSON pinning endpoint.
// Content holds the client document verbatim.
type PinJSONRequest struct {
	Content  json.RawMessage `json:"pinataContent"`
	Metadata PinMetadata     `json:"pinataMetadata"`
}

// PinResult is what the relay hands back to its own clients: the content
// hash and the public gateway URI built from it.
type PinResult struct {
	Hash string
	URI  string
}
