package http

import (
	"github.com/MKhiriev/go-upload-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	if h.metrics != nil {
		router.With(h.internalOnly).Handle("/metrics", h.metrics.Handler())
	}

	router.Route("/{version}", func(r chi.Router) {
		r.Use(h.checkAPIVersion)

		r.Get("/version", h.getServerVersion)

		r.Route("/upload", func(r chi.Router) {
			// trusted peers
			r.With(h.internalOnly, h.limitBody).Post("/internal/*", h.upload)

			r.With(h.auth, h.requirePermission(models.PermissionDeploy), h.limitBody).Post("/*", h.upload)
		})

		r.With(h.internalOnly).Get("/uploads/{key}", h.getUpload)
	})

	return router
}
