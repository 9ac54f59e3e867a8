package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrRequestTooLarge     = errors.New("request too large")
	ErrUploadFailed        = errors.New("upload failed")
	ErrInternalServerError = errors.New("internal server error")

	ErrEmptyUploadKey = errors.New("server returned an empty upload key")
)
