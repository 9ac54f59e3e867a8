package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-upload-keeper/internal/logger"
	"github.com/MKhiriev/go-upload-keeper/internal/service"
	"github.com/MKhiriev/go-upload-keeper/internal/store"
	"github.com/MKhiriev/go-upload-keeper/internal/utils"
	"github.com/MKhiriev/go-upload-keeper/models"
)

// errorMapping is checked in order: an *service.UploadError also wraps the
// repository error, and it must map to UPLOAD_FAILED whatever that error is.
var errorMapping = []struct {
	target error
	status int
	code   string
}{
	{service.ErrUploadFailed, http.StatusInternalServerError, models.CodeUploadFailed},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, models.CodeAccessDenied},

	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, models.CodeAccessDenied},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, models.CodeAccessDenied},
	{ErrEmptyInternalKey, http.StatusUnauthorized, models.CodeAccessDenied},
	{ErrMissingPermission, http.StatusForbidden, models.CodeAccessDenied},
	{ErrWrongInternalKey, http.StatusForbidden, models.CodeAccessDenied},
	{ErrInternalAccessDisabled, http.StatusForbidden, models.CodeAccessDenied},
	{ErrInvalidMultipartRequest, http.StatusBadRequest, models.CodeInvalidRequest},
	{ErrUploadTooLarge, http.StatusRequestEntityTooLarge, models.CodeInvalidRequest},

	{store.ErrInvalidUploadKey, http.StatusBadRequest, models.CodeInvalidRequest},
	{store.ErrUploadNotFound, http.StatusNotFound, models.CodeUploadNotFound},
}

func statusFromError(err error) int {
	for _, m := range errorMapping {
		if errors.Is(err, m.target) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// errorResponseFromError builds the JSON body for err. Unknown errors are
// reported without detail.
func errorResponseFromError(err error) models.ErrorResponse {
	var uploadErr *service.UploadError
	if errors.As(err, &uploadErr) {
		return uploadErr.Response()
	}

	for _, m := range errorMapping {
		if errors.Is(err, m.target) {
			return models.ErrorResponse{Code: m.code, Detail: err.Error()}
		}
	}

	return models.ErrorResponse{
		Code:   models.CodeInternal,
		Detail: http.StatusText(http.StatusInternalServerError),
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	logger.FromRequest(r).Err(err).Int("status", status).Msg("request failed")
	utils.WriteError(w, errorResponseFromError(err), status)
}
