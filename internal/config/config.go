// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"net"
	"strconv"
	"time"

	"github.com/MKhiriev/pin-relay/models"
)

const (
	productionEnvironment = "production"

	defaultPort            = 3001
	defaultShutdownTimeout = 10 * time.Second

	defaultPinataAPIURL     = "https://api.pinata.cloud"
	defaultPinataGatewayURL = "https://gateway.pinata.cloud/ipfs"
	defaultMetadataName     = "metadata.json"

	productionHost  = "0.0.0.0"
	developmentHost = "localhost"

	productionLogLevel  = "info"
	developmentLogLevel = "debug"
)

// StructuredConfig is the top-level configuration container for the relay.
// It is populated by merging values from a .env file, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - validate: go-playground/validator rules checked after defaults are applied.
type StructuredConfig struct {
	// App holds process-wide settings: the runtime environment and log level.
	App App

	// Server holds the listen address of the HTTP server.
	Server Server

	// Pinata holds the credentials and endpoints of the pinning service.
	Pinata Pinata `envPrefix:"PINATA_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-wide settings.
type App struct {
	// Environment selects the bind address: "production" listens on all
	// interfaces, anything else on loopback only.
	// Env: NODE_ENV
	Environment string `env:"NODE_ENV"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Diagnostics starts a gops agent so that a running relay can be
	// inspected with the gops command.
	// Env: GOPS_AGENT
	Diagnostics bool `env:"GOPS_AGENT"`
}

// Server holds network settings for the inbound HTTP server.
type Server struct {
	// HTTPAddress is the full "host:port" listen address. When empty it is
	// derived from Port and App.Environment.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"SERVER_ADDRESS"`

	// Port is the TCP port used when HTTPAddress is not set.
	// Env: PORT
	Port int `env:"PORT" validate:"min=1,max=65535"`

	// ShutdownTimeout bounds graceful shutdown of in-flight requests.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" validate:"gte=0"`
}

// Pinata holds configuration of the upstream pinning service.
type Pinata struct {
	// Env: PINATA_API_KEY
	APIKey string `env:"API_KEY"`

	// Env: PINATA_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`

	// LegacySecretKey is read from PINATA_SECRET_API_KEY, the name used by
	// older deployments. It only fills SecretKey when the latter is empty.
	LegacySecretKey string `env:"SECRET_API_KEY"`

	// APIURL is the base URL of the pinning API.
	// Env: PINATA_API_URL
	APIURL string `env:"API_URL" validate:"required,http_url"`

	// GatewayURL is the public gateway prefix; the content hash is appended
	// to it after a slash.
	// Env: PINATA_GATEWAY_URL
	GatewayURL string `env:"GATEWAY_URL" validate:"required,http_url"`

	// MetadataName is the fixed name put in the envelope of pinned JSON documents.
	// Env: PINATA_METADATA_NAME
	MetadataName string `env:"METADATA_NAME" validate:"required"`

	// RequestTimeout bounds a single upstream call. Zero means no timeout.
	// Env: PINATA_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gte=0"`
}

// Credentials returns the pinning service secrets as an immutable value.
func (p Pinata) Credentials() models.Credentials {
	return models.Credentials{
		APIKey:    p.APIKey,
		SecretKey: p.SecretKey,
	}
}

// MarshalJSON renders the Pinata settings with the secrets masked, so the
// config can be logged as a whole.
func (p Pinata) MarshalJSON() ([]byte, error) {
	type safePinata struct {
		Credentials    models.Credentials `json:"credentials"`
		APIURL         string             `json:"api_url"`
		GatewayURL     string             `json:"gateway_url"`
		MetadataName   string             `json:"metadata_name"`
		RequestTimeout string             `json:"request_timeout"`
	}

	return json.Marshal(safePinata{
		Credentials:    p.Credentials(),
		APIURL:         p.APIURL,
		GatewayURL:     p.GatewayURL,
		MetadataName:   p.MetadataName,
		RequestTimeout: p.RequestTimeout.String(),
	})
}

// IsProduction reports whether the relay runs in the production environment.
func (a App) IsProduction() bool {
	return a.Environment == productionEnvironment
}

// applyDefaults fills every unset field with its default value. It runs
// after all sources are merged so that defaults never shadow a real value.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = developmentLogLevel
		if cfg.App.IsProduction() {
			cfg.App.LogLevel = productionLogLevel
		}
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}
	if cfg.Server.HTTPAddress == "" {
		host := developmentHost
		if cfg.App.IsProduction() {
			host = productionHost
		}
		cfg.Server.HTTPAddress = net.JoinHostPort(host, strconv.Itoa(cfg.Server.Port))
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.Pinata.SecretKey == "" {
		cfg.Pinata.SecretKey = cfg.Pinata.LegacySecretKey
	}
	if cfg.Pinata.APIURL == "" {
		cfg.Pinata.APIURL = defaultPinataAPIURL
	}
	if cfg.Pinata.GatewayURL == "" {
		cfg.Pinata.GatewayURL = defaultPinataGatewayURL
	}
	if cfg.Pinata.MetadataName == "" {
		cfg.Pinata.MetadataName = defaultMetadataName
	}
}

// GetStructuredConfig loads, merges, and validates the relay configuration
// from the .env file, the environment, the command-line arguments, and the
// JSON file named by any of them.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(defaultDotEnvPath).
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
