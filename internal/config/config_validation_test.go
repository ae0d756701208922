package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() StructuredConfig {
	cfg := StructuredConfig{}
	cfg.applyDefaults()
	return cfg
}

func TestValidate_DefaultsAreValid(t *testing.T) {
	cfg := validConfig()

	assert.NoError(t, cfg.validate())
}

func TestValidate_MissingCredentialsAreAllowed(t *testing.T) {
	cfg := validConfig()
	cfg.Pinata.APIKey = ""
	cfg.Pinata.SecretKey = ""

	assert.NoError(t, cfg.validate())
}

func TestValidate_IPv6Address(t *testing.T) {
	cfg := validConfig()
	cfg.Server.HTTPAddress = "[::1]:3001"

	assert.NoError(t, cfg.validate())
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:    "unknown log level",
			mutate:  func(cfg *StructuredConfig) { cfg.App.LogLevel = "chatty" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "port out of range",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.Port = 70000 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "address without port",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "localhost" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "address with named port",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "localhost:http" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "negative shutdown timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.ShutdownTimeout = -1 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "api url without scheme",
			mutate:  func(cfg *StructuredConfig) { cfg.Pinata.APIURL = "api.pinata.cloud" },
			wantErr: ErrInvalidPinataConfigs,
		},
		{
			name:    "gateway url with ftp scheme",
			mutate:  func(cfg *StructuredConfig) { cfg.Pinata.GatewayURL = "ftp://gateway.example" },
			wantErr: ErrInvalidPinataConfigs,
		},
		{
			name:    "empty metadata name",
			mutate:  func(cfg *StructuredConfig) { cfg.Pinata.MetadataName = "" },
			wantErr: ErrInvalidPinataConfigs,
		},
		{
			name:    "api url without host",
			mutate:  func(cfg *StructuredConfig) { cfg.Pinata.APIURL = "https://" },
			wantErr: ErrInvalidPinataConfigs,
		},
		{
			name:    "negative request timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Pinata.RequestTimeout = -1 },
			wantErr: ErrInvalidPinataConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.validate()

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
