// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"io"
	"time"
)

// UploadFileParamName is the multipart form field that carries the uploaded file.
const UploadFileParamName = "file"

// UploadRequest describes a single artifact upload as received by the
// transport layer.
type UploadRequest struct {
	// PathFileName is the file name taken from the request path. It may be
	// empty, in which case OriginalFileName is used.
	PathFileName string

	// OriginalFileName is the file name carried by the multipart payload.
	OriginalFileName string

	// Content streams the uploaded bytes.
	Content io.Reader
}

// ResolvedName returns the name the artifact is stored under: the path
// supplied name when present, the multipart file name otherwise.
func (r UploadRequest) ResolvedName() string {
	if r.PathFileName == "" {
		return r.OriginalFileName
	}
	return r.PathFileName
}

// UploadResponse is returned to the client after a successful upload.
// UploadKey is non-empty if and only if the upload succeeded.
type UploadResponse struct {
	UploadKey string `json:"uploadKey"`
}

// UploadedFile describes an artifact kept by the upload repository.
// Later deployment steps resolve the upload key into this value.
type UploadedFile struct {
	// Key is the opaque upload key returned by Put.
	Key string `json:"key"`

	// Name is the resolved name the artifact was stored under.
	Name string `json:"name"`

	// Path is the absolute location of the stored bytes.
	Path string `json:"-"`

	// Size is the stored payload length in bytes.
	Size int64 `json:"size"`

	// CreatedAt is when the artifact was written.
	CreatedAt time.Time `json:"created_at"`

	// ExpiresAt is when the artifact becomes eligible for eviction.
	ExpiresAt time.Time `json:"expires_at"`
}
