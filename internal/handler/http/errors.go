// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrMissingPermission is returned when the caller's token does not grant
	// the permission a route requires.
	ErrMissingPermission = errors.New("missing permission")

	// ErrEmptyInternalKey is returned by internalOnly when the request has no
	// X-Internal-Key header.
	ErrEmptyInternalKey = errors.New("empty `X-Internal-Key` header")

	// ErrWrongInternalKey is returned by internalOnly when the header does not
	// match the configured key.
	ErrWrongInternalKey = errors.New("wrong internal key")

	// ErrInternalAccessDisabled is returned by internalOnly when the server
	// has no internal key configured.
	ErrInternalAccessDisabled = errors.New("internal access is disabled")

	// ErrInvalidMultipartRequest wraps multipart parsing failures and a
	// missing file field.
	ErrInvalidMultipartRequest = errors.New("invalid multipart request")

	// ErrUploadTooLarge is returned when the body exceeds the configured limit.
	ErrUploadTooLarge = errors.New("upload is too large")
)
