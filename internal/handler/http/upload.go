// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/MKhiriev/pin-relay/internal/app"
	"github.com/MKhiriev/pin-relay/internal/logger"
	"github.com/MKhiriev/pin-relay/internal/service"
	"github.com/MKhiriev/pin-relay/internal/utils"
	"github.com/MKhiriev/pin-relay/models"
)

const (
	fileField = "file"

	defaultContentType = "application/octet-stream"
)

func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	// An unparsable or non-multipart body is treated like a form without a
	// file: the service answers with ErrNoFileProvided.
	var file models.File
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		log.Debug().Err(err).Msg("request is not a readable multipart form")
	} else {
		defer r.MultipartForm.RemoveAll()
	}

	if r.MultipartForm != nil {
		content, header, err := r.FormFile(fileField)
		if err == nil {
			defer content.Close()
			contentType := header.Header.Get("Content-Type")
			if contentType == "" {
				contentType = defaultContentType
			}
			file = models.File{
				Name:        header.Filename,
				ContentType: contentType,
				Size:        header.Size,
				Content:     content,
			}
		}
	}

	result, err := h.services.PinService.UploadFile(ctx, file)
	if err != nil {
		h.writeError(w, r, err, app.MsgFailedUploadImage)
		return
	}

	h.writeJSON(w, r, models.UploadResponse{URI: result.URI}, http.StatusOK)
}

func (h *Handler) uploadMetadata(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	// An empty body is pinned as {}, so a body that could not be read must
	// not reach the service as empty.
	document, err := io.ReadAll(r.Body)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read metadata body")
		h.writeError(w, r, service.ErrInvalidMetadata, app.MsgFailedUploadMetadata)
		return
	}

	result, err := h.services.PinService.UploadMetadata(ctx, json.RawMessage(document))
	if err != nil {
		h.writeError(w, r, err, app.MsgFailedUploadMetadata)
		return
	}

	h.writeJSON(w, r, models.UploadResponse{URI: result.URI}, http.StatusOK)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	resp := responseFromError(err, fallback)
	if _, werr := utils.WriteError(w, resp.message, resp.status); werr != nil {
		logger.FromRequest(r).Err(werr).Msg("failed to write error response")
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write response")
	}
}
