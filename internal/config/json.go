package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// config file.
type StructuredJSONConfig struct {
	App struct {
		Environment string `json:"environment"`
		LogLevel    string `json:"log_level"`
		Diagnostics bool   `json:"diagnostics"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		Port            int      `json:"port"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Pinata struct {
		APIKey         string   `json:"api_key"`
		SecretKey      string   `json:"secret_key"`
		APIURL         string   `json:"api_url"`
		GatewayURL     string   `json:"gateway_url"`
		MetadataName   string   `json:"metadata_name"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"pinata,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Environment: jsonCfg.App.Environment,
			LogLevel:    jsonCfg.App.LogLevel,
			Diagnostics: jsonCfg.App.Diagnostics,
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			Port:            jsonCfg.Server.Port,
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Pinata: Pinata{
			APIKey:         jsonCfg.Pinata.APIKey,
			SecretKey:      jsonCfg.Pinata.SecretKey,
			APIURL:         jsonCfg.Pinata.APIURL,
			GatewayURL:     jsonCfg.Pinata.GatewayURL,
			MetadataName:   jsonCfg.Pinata.MetadataName,
			RequestTimeout: time.Duration(jsonCfg.Pinata.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
