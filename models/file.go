// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "io"

// File is a single uploaded file received from a client and relayed to the
// pinning service. It lives only for the duration of one request.
type File struct {
	// Name is the original filename sent by the client.
	Name string

	// ContentType is the MIME type declared by the client for the file part.
	ContentType string

	// Size is the number of bytes in Content, as reported by the multipart
	// reader. Informational only.
	Size int64

	// Content streams the file bytes. The caller owns closing the source.
	Content io.Reader
}
