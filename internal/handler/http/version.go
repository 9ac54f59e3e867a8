package http

import (
	"net/http"
)

const apiVersionHeader = "X-API-Version"

// getServerVersion writes the build version as plain text. The API version
// the server accepts, if pinned, is reported in a header.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	if h.apiVersion != "" {
		w.Header().Set(apiVersionHeader, h.apiVersion)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(h.services.AppInfoService.GetAppVersion(r.Context())))
}
