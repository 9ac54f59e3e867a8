package service

import (
	"fmt"

	"github.com/MKhiriev/go-upload-keeper/internal/config"
	"github.com/MKhiriev/go-upload-keeper/internal/logger"
	"github.com/MKhiriev/go-upload-keeper/internal/metrics"
	"github.com/MKhiriev/go-upload-keeper/internal/store"
)

type Services struct {
	AuthService    AuthService
	UploadService  UploadService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, m *metrics.Metrics, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthService(cfg.App, logger),
		UploadService:  NewUploadService(storages.UploadRepository, m, logger),
		AppInfoService: appInfoService,
	}, nil
}
