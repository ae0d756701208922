// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

const redacted = "[REDACTED]"

// Credentials is the pair of secrets used to authenticate against the
// pinning service. It is read once at startup and never changes afterwards.
type Credentials struct {
	APIKey    string
	SecretKey string
}

// Complete reports whether both secrets are set.
func (c Credentials) Complete() bool {
	return c.APIKey != "" && c.SecretKey != ""
}

// String hides the secrets so that credentials can be printed safely.
func (c Credentials) String() string {
	return "Credentials{APIKey:" + mask(c.APIKey) + " SecretKey:" + mask(c.SecretKey) + "}"
}

// MarshalJSON keeps secrets out of structured logs.
func (c Credentials) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		APIKey    string `json:"api_key"`
		SecretKey string `json:"secret_key"`
	}{
		APIKey:    mask(c.APIKey),
		SecretKey: mask(c.SecretKey),
	})
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	return redacted
}
