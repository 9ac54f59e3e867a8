// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the upload server API.
//
// [UploadAdapter] hides the REST routes from the uploader command. The
// package ships an HTTP implementation built on resty
// ([NewHTTPUploadAdapter]).
//
// Error responses are mapped by mapHTTPError to the sentinel values of
// errors.go so that callers can use [errors.Is] (e.g. [ErrUploadFailed] for
// an UPLOAD_FAILED body, [ErrUnauthorized] for 401). The decoded
// [models.ErrorResponse] stays in the chain for [errors.As].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-upload-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/upload_adapter_mock.go -package=mock

// UploadAdapter talks to an upload server.
type UploadAdapter interface {
	// Upload sends the local file at path under fileName and returns the
	// upload key. An empty fileName lets the server use the base name of
	// path. With internal set the internal route and the internal key are
	// used instead of the bearer token.
	Upload(ctx context.Context, fileName, path string, internal bool) (models.UploadResponse, error)

	// Info describes an uploaded artifact. It always uses the internal key.
	Info(ctx context.Context, key string) (models.UploadedFile, error)
}
