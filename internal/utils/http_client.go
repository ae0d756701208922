package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around resty.Client used for all outbound calls.
// It embeds *resty.Client to expose its full API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent client for baseURL.
//
// A zero timeout leaves requests unbounded; callers then rely on the request
// context for cancellation. Retries are disabled: a failed call is reported
// to the caller as is.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetRetryCount(0)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
