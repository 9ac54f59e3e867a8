package http

import (
	"github.com/MKhiriev/go-upload-keeper/internal/config"
	"github.com/MKhiriev/go-upload-keeper/internal/logger"
	"github.com/MKhiriev/go-upload-keeper/internal/metrics"
	"github.com/MKhiriev/go-upload-keeper/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	// apiVersion is the only accepted {version} path segment; empty accepts any.
	apiVersion string

	// internalKey guards the internal upload route; empty closes it.
	internalKey string

	// maxUploadSize limits request bodies on upload routes; zero disables it.
	maxUploadSize int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, m *metrics.Metrics, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		metrics:       m,
		apiVersion:    cfg.App.APIVersion,
		internalKey:   cfg.App.InternalKey,
		maxUploadSize: cfg.Server.MaxUploadSize,
		logger:        logger,
	}
}
