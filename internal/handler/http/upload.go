package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-upload-keeper/internal/logger"
	"github.com/MKhiriev/go-upload-keeper/internal/utils"
	"github.com/MKhiriev/go-upload-keeper/models"
	"github.com/go-chi/chi/v5"
)

// maxMultipartMemory is how much of a multipart body is kept in memory
// before the rest spills to temporary files.
const maxMultipartMemory = 32 << 20

// upload serves both upload routes. The file name is whatever follows
// /upload/ (or /upload/internal/) in the path and may be empty.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	defer func() {
		if r.MultipartForm != nil {
			if err := r.MultipartForm.RemoveAll(); err != nil {
				log.Err(err).Msg("failed to remove multipart temp files")
			}
		}
	}()

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		h.writeError(w, r, multipartError(err))
		return
	}

	file, header, err := r.FormFile(models.UploadFileParamName)
	if err != nil {
		h.writeError(w, r, multipartError(err))
		return
	}
	defer file.Close()

	response, err := h.services.UploadService.Upload(ctx, models.UploadRequest{
		PathFileName:     pathFileName(r),
		OriginalFileName: header.Filename,
		Content:          file,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write upload response")
	}
}

func (h *Handler) getUpload(w http.ResponseWriter, r *http.Request) {
	file, err := h.services.UploadService.Info(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, file, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write upload info")
	}
}

// pathFileName returns the wildcard part of the route, decoded once. chi
// routes on RawPath when it is set, so only then is the param still
// escaped. Undecodable values are returned as is.
func pathFileName(r *http.Request) string {
	param := chi.URLParam(r, "*")
	if r.URL.RawPath == "" {
		return param
	}

	name, err := url.PathUnescape(param)
	if err != nil {
		return param
	}
	return name
}

func multipartError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return fmt.Errorf("%w: limit is %d bytes", ErrUploadTooLarge, maxBytesErr.Limit)
	}

	return fmt.Errorf("%w: %w", ErrInvalidMultipartRequest, err)
}
