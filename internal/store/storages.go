package store

import (
	"fmt"

	"github.com/MKhiriev/go-upload-keeper/internal/config"
	"github.com/MKhiriev/go-upload-keeper/internal/logger"
	"github.com/MKhiriev/go-upload-keeper/internal/utils"
)

type Storages struct {
	UploadRepository UploadRepository
}

func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	uploadRepository, err := NewFileUploadRepository(cfg.Uploads.Dir, cfg.Uploads.CleanupTimeout, utils.NewUploadKeys(), logger)
	if err != nil {
		return nil, fmt.Errorf("error creating upload repository: %w", err)
	}

	return &Storages{
		UploadRepository: uploadRepository,
	}, nil
}
