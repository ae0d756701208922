package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/pin-relay/internal/config"
	"github.com/MKhiriev/pin-relay/internal/logger"
	"github.com/MKhiriev/pin-relay/internal/utils"
	"github.com/MKhiriev/pin-relay/models"
	"github.com/go-resty/resty/v2"
)

const (
	pinFilePath = "/pinning/pinFileToIPFS"
	pinJSONPath = "/pinning/pinJSONToIPFS"

	apiKeyHeader    = "pinata_api_key"
	secretKeyHeader = "pinata_secret_api_key"

	fileField = "file"
)

type pinataAdapter struct {
	client      *utils.HTTPClient
	credentials models.Credentials

	logger *logger.Logger
}

// NewPinataAdapter constructs the Pinata implementation of [Pinner].
// The credentials are attached as headers to every request; they are not
// checked here, the service layer decides what to do when they are missing.
func NewPinataAdapter(cfg config.Pinata, logger *logger.Logger) Pinner {
	client := utils.NewHTTPClient(strings.TrimRight(cfg.APIURL, "/"), cfg.RequestTimeout)

	return &pinataAdapter{
		client:      client,
		credentials: cfg.Credentials(),
		logger:      logger,
	}
}

// PinFile implements [Pinner]. It POSTs file to /pinning/pinFileToIPFS.
func (p *pinataAdapter) PinFile(ctx context.Context, file models.File) (models.PinataResponse, error) {
	resp, err := p.request(ctx).
		SetMultipartField(fileField, file.Name, file.ContentType, file.Content).
		Post(pinFilePath)
	if err != nil {
		return models.PinataResponse{}, fmt.Errorf("pin file request: %w", err)
	}

	return p.decode(resp)
}

// PinJSON implements [Pinner]. It POSTs req to /pinning/pinJSONToIPFS.
func (p *pinataAdapter) PinJSON(ctx context.Context, req models.PinJSONRequest) (models.PinataResponse, error) {
	resp, err := p.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(pinJSONPath)
	if err != nil {
		return models.PinataResponse{}, fmt.Errorf("pin json request: %w", err)
	}

	return p.decode(resp)
}

func (p *pinataAdapter) request(ctx context.Context) *resty.Request {
	return p.client.R().
		SetContext(ctx).
		SetHeader(apiKeyHeader, p.credentials.APIKey).
		SetHeader(secretKeyHeader, p.credentials.SecretKey)
}

func (p *pinataAdapter) decode(resp *resty.Response) (models.PinataResponse, error) {
	logger.FromContextOr(resp.Request.Context(), p.logger).Debug().
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("upstream_duration", resp.Time()).
		Msg("pinning service responded")

	if err := mapHTTPError(resp); err != nil {
		return models.PinataResponse{}, err
	}

	var out models.PinataResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return models.PinataResponse{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if out.IpfsHash == "" {
		return models.PinataResponse{}, ErrEmptyHash
	}

	return out, nil
}
