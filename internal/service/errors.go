// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-upload-keeper/models"
)

var (
	ErrUploadFailed = errors.New("upload failed")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// UploadError reports that the upload repository refused an artifact.
//
// Code is always models.CodeUploadFailed. Subject is the resolved file name
// and Detail is the repository's error message, unchanged. errors.Is
// matches both ErrUploadFailed and the repository error.
type UploadError struct {
	Code    string
	Subject string
	Detail  string
	Err     error
}

func NewUploadError(subject string, err error) *UploadError {
	return &UploadError{
		Code:    models.CodeUploadFailed,
		Subject: subject,
		Detail:  err.Error(),
		Err:     err,
	}
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrUploadFailed, e.Subject, e.Detail)
}

// Response renders the error as the JSON error payload.
func (e *UploadError) Response() models.ErrorResponse {
	return models.ErrorResponse{
		Code:    e.Code,
		Subject: e.Subject,
		Detail:  e.Detail,
	}
}

func (e *UploadError) Unwrap() []error {
	return []error{ErrUploadFailed, e.Err}
}
