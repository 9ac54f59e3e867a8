package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-upload-keeper/internal/logger"
	"github.com/MKhiriev/go-upload-keeper/internal/utils"
	"github.com/MKhiriev/go-upload-keeper/models"
	"github.com/go-chi/chi/v5"
)

// checkAPIVersion rejects requests whose {version} path segment differs from
// the configured API version.
func (h *Handler) checkAPIVersion(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		version := chi.URLParam(r, "version")

		if h.apiVersion != "" && version != h.apiVersion {
			logger.FromRequest(r).Warn().
				Str("requested", version).
				Str("supported", h.apiVersion).
				Msg("api version mismatch")

			utils.WriteError(w, models.ErrorResponse{
				Code:    models.CodeVersionMismatch,
				Subject: version,
				Detail:  fmt.Sprintf("supported API version is %s", h.apiVersion),
			}, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
