// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/pin-relay/internal/config"
	"github.com/MKhiriev/pin-relay/internal/logger"
	"github.com/MKhiriev/pin-relay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHash = "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"

// newTestAdapter creates a pinataAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) Pinner {
	t.Helper()
	cfg := config.Pinata{
		APIKey:    "test-api-key",
		SecretKey: "test-secret-key",
		APIURL:    serverURL + "/",
	}
	return NewPinataAdapter(cfg, logger.Nop())
}

func writePinataOK(t *testing.T, w http.ResponseWriter) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(models.PinataResponse{
		IpfsHash:  testHash,
		PinSize:   42,
		Timestamp: "2026-10-16T10:00:00.000Z",
	})
}

func testFile(content string) models.File {
	return models.File{
		Name:        "cat.png",
		ContentType: "image/png",
		Size:        int64(len(content)),
		Content:     strings.NewReader(content),
	}
}

// ── PinFile ─────────────────────────────────────────────────────────────────

func TestPinFile_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/pinning/pinFileToIPFS", r.URL.Path)
		assert.Equal(t, "test-api-key", r.Header.Get("pinata_api_key"))
		assert.Equal(t, "test-secret-key", r.Header.Get("pinata_secret_api_key"))
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "cat.png", header.Filename)
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "png-bytes", string(content))

		writePinataOK(t, w)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.PinFile(context.Background(), testFile("png-bytes"))

	require.NoError(t, err)
	assert.Equal(t, testHash, got.IpfsHash)
	assert.Equal(t, int64(42), got.PinSize)
}

func TestPinFile_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"reason":"INVALID_API_KEYS"}}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.PinFile(context.Background(), testFile("x"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "INVALID_API_KEYS")
}

func TestPinFile_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.PinFile(context.Background(), testFile("x"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "pin file request")
}

func TestPinFile_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writePinataOK(t, w)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := newTestAdapter(t, srv.URL)
	_, err := a.PinFile(ctx, testFile("x"))

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPinFile_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	a := NewPinataAdapter(config.Pinata{
		APIKey:         "k",
		SecretKey:      "s",
		APIURL:         srv.URL,
		RequestTimeout: 50 * time.Millisecond,
	}, logger.Nop())

	_, err := a.PinFile(context.Background(), testFile("x"))

	require.Error(t, err)
}

// ── PinJSON ─────────────────────────────────────────────────────────────────

func TestPinJSON_SendsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/pinning/pinJSONToIPFS", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "test-api-key", r.Header.Get("pinata_api_key"))
		assert.Equal(t, "test-secret-key", r.Header.Get("pinata_secret_api_key"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t,
			`{"pinataContent":{"name":"Token #1"},"pinataMetadata":{"name":"metadata.json"}}`,
			string(body))

		writePinataOK(t, w)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.PinJSON(context.Background(), models.PinJSONRequest{
		Content:  json.RawMessage(`{"name":"Token #1"}`),
		Metadata: models.PinMetadata{Name: "metadata.json"},
	})

	require.NoError(t, err)
	assert.Equal(t, testHash, got.IpfsHash)
}

func TestPinJSON_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.PinJSON(context.Background(), models.PinJSONRequest{Content: json.RawMessage(`{}`)})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestPinJSON_EmptyHash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"PinSize":1}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.PinJSON(context.Background(), models.PinJSONRequest{Content: json.RawMessage(`{}`)})

	assert.ErrorIs(t, err, ErrEmptyHash)
}

// ── mapHTTPError ────────────────────────────────────────────────────────────

func TestPinJSON_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "400", status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{name: "401", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "403", status: http.StatusForbidden, wantErr: ErrForbidden},
		{name: "429", status: http.StatusTooManyRequests, wantErr: ErrTooManyRequests},
		{name: "500", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
		{name: "502", status: http.StatusBadGateway, wantErr: ErrUpstream},
		{name: "304", status: http.StatusNotModified, wantErr: ErrUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.PinJSON(context.Background(), models.PinJSONRequest{Content: json.RawMessage(`{}`)})

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMapHTTPError_TruncatesLongBodies(t *testing.T) {
	long := strings.Repeat("x", 4*maxErrorBodyLen)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(long))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.PinJSON(context.Background(), models.PinJSONRequest{Content: json.RawMessage(`{}`)})

	require.Error(t, err)
	assert.Less(t, len(err.Error()), len(long))
}
