package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-upload-keeper/internal/service"
	"github.com/MKhiriev/go-upload-keeper/internal/store"
	"github.com/MKhiriev/go-upload-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "upload error", err: service.NewUploadError("a", errors.New("disk full")), wantStatus: http.StatusInternalServerError},
		{name: "upload error wraps not found", err: service.NewUploadError("a", store.ErrUploadNotFound), wantStatus: http.StatusInternalServerError},
		{name: "invalid token", err: service.ErrTokenIsExpiredOrInvalid, wantStatus: http.StatusUnauthorized},
		{name: "missing permission", err: fmt.Errorf("%w: deploy", ErrMissingPermission), wantStatus: http.StatusForbidden},
		{name: "multipart", err: fmt.Errorf("%w: %w", ErrInvalidMultipartRequest, http.ErrMissingFile), wantStatus: http.StatusBadRequest},
		{name: "too large", err: ErrUploadTooLarge, wantStatus: http.StatusRequestEntityTooLarge},
		{name: "not found", err: fmt.Errorf("get: %w", store.ErrUploadNotFound), wantStatus: http.StatusNotFound},
		{name: "unknown", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, statusFromError(tt.err))
		})
	}
}

func TestErrorResponseFromError(t *testing.T) {
	assert.Equal(t,
		models.ErrorResponse{Code: models.CodeUploadFailed, Subject: "app.jar", Detail: "disk full"},
		errorResponseFromError(service.NewUploadError("app.jar", errors.New("disk full"))),
	)

	assert.Equal(t,
		models.ErrorResponse{Code: models.CodeAccessDenied, Detail: ErrWrongInternalKey.Error()},
		errorResponseFromError(ErrWrongInternalKey),
	)

	internal := errorResponseFromError(errors.New("open /srv/secret: permission denied"))
	assert.Equal(t, models.CodeInternal, internal.Code)
	assert.NotContains(t, internal.Detail, "/srv/secret")
}

func TestMultipartError(t *testing.T) {
	assert.ErrorIs(t, multipartError(&http.MaxBytesError{Limit: 10}), ErrUploadTooLarge)
	assert.ErrorIs(t, multipartError(http.ErrNotMultipart), ErrInvalidMultipartRequest)
	assert.ErrorIs(t, multipartError(http.ErrNotMultipart), http.ErrNotMultipart)
}
