package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmptyFileName is returned by Put when no name was given.
	ErrEmptyFileName = errors.New("file name is empty")

	// ErrInvalidFileName is returned by Put when the name does not contain a
	// usable file name component (e.g. "/" or "..").
	ErrInvalidFileName = errors.New("invalid file name")

	// ErrInvalidUploadKey is returned by Get for keys the repository could
	// never have produced.
	ErrInvalidUploadKey = errors.New("invalid upload key")

	// ErrUploadNotFound is returned by Get for unknown or expired keys.
	ErrUploadNotFound = errors.New("upload was not found")
)
