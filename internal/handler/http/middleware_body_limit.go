package http

import "net/http"

func (h *Handler) limitBody(next http.Handler) http.Handler {
	if h.maxUploadSize <= 0 {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
		next.ServeHTTP(w, r)
	})
}
